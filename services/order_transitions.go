// services/order_transitions.go
package services

import (
	"errors"
	"fmt"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"

	"gorm.io/gorm"
)

// adminTransitions is the forward path an admin may drive. Cancellation is
// handled separately: admins may cancel from any non-terminal state.
var adminTransitions = map[string]string{
	entity.StatusPending:        entity.StatusPreparing,
	entity.StatusPreparing:      entity.StatusOutForDelivery,
	entity.StatusOutForDelivery: entity.StatusDelivered,
}

// AdminSetStatus moves an order to newStatus on behalf of an admin. The write
// is a single guarded UPDATE; delivered additionally stamps delivered_at.
func (s *OrderService) AdminSetStatus(orderID uint, newStatus string) (*entity.Order, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", apperr.ErrInvalidStatus, newStatus)
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if newStatus == entity.StatusCancelled {
		if entity.TerminalStatus(o.Status) {
			return nil, fmt.Errorf("%w: order already %s", apperr.ErrInvalidStatus, o.Status)
		}
	} else if adminTransitions[o.Status] != newStatus {
		return nil, fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidStatus, o.Status, newStatus)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order changed concurrently", apperr.ErrInvalidStatus)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(updated)
	}
	return updated, nil
}

// CustomerCancel lets the owning customer cancel, but only while the order is
// still pending. Once preparation has begun this path is closed.
func (s *OrderService) CustomerCancel(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Status != entity.StatusPending {
		return nil, fmt.Errorf("%w: cannot cancel a %s order", apperr.ErrForbidden, o.Status)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusPending, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: order is no longer pending", apperr.ErrForbidden)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(updated)
	}
	return updated, nil
}
