package services

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"gorm.io/gorm"
)

// OrderService covers order reads and the status lifecycle (transitions live
// in order_transitions.go).
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Notifier OrderNotifier // optional
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAllOrders()
}

// Detail returns the order for its owner, or for an admin.
func (s *OrderService) Detail(userID uint, role string, orderID uint) (*entity.Order, error) {
	var (
		o   *entity.Order
		err error
	)
	if role == "admin" {
		o, err = s.Repo.GetOrder(orderID)
	} else {
		o, err = s.Repo.GetOrderForUser(userID, orderID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return o, err
}
