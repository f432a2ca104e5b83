package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate is the fixed 8% applied to every order's subtotal.
var TaxRate = decimal.NewFromFloat(0.08)

// DefaultDeliveryFee applies when the restaurant does not carry its own fee.
var DefaultDeliveryFee = decimal.NewFromFloat(2.99)

// OrderNotifier receives every order-state event worth pushing to clients.
type OrderNotifier interface {
	NotifyOrder(o *entity.Order)
}

// CheckoutService assembles the user's cart plus delivery/payment details
// into an order and submits it.
type CheckoutService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	FoodRepo  *repository.FoodRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
	Notifier  OrderNotifier // optional
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	foodRepo *repository.FoodRepository,
	orderRepo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
) *CheckoutService {
	return &CheckoutService{
		DB: db, CartRepo: cartRepo, FoodRepo: foodRepo,
		OrderRepo: orderRepo, RestRepo: restRepo,
	}
}

type DeliveryAddressIn struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type CheckoutIn struct {
	Address             DeliveryAddressIn `json:"deliveryAddress"`
	PaymentMethod       string            `json:"paymentMethod"`
	SpecialInstructions string            `json:"specialInstructions"`
}

func (a *DeliveryAddressIn) validate() error {
	for field, v := range map[string]string{
		"street": a.Street, "city": a.City, "state": a.State, "zipCode": a.ZipCode,
	} {
		if strings.TrimSpace(v) == "" {
			return apperr.Validationf("deliveryAddress.%s is required", field)
		}
	}
	if a.Country == "" {
		a.Country = "USA"
	}
	return nil
}

// Checkout builds and persists the order. Prices are re-read from the
// catalog, never taken from cart snapshots. The cart is left untouched; the
// caller clears it after a successful submission.
func (s *CheckoutService) Checkout(userID uint, in *CheckoutIn) (*entity.Order, error) {
	if err := in.Address.validate(); err != nil {
		return nil, err
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCard
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, apperr.Validationf("unknown payment method %q", in.PaymentMethod)
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.RestaurantID == 0 {
		return nil, apperr.ErrEmptyCart
	}

	// re-resolve every line against the catalog
	subtotal := decimal.Zero
	lines := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		f, err := s.FoodRepo.GetBasics(it.FoodItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food item %d", apperr.ErrStaleCartItem, it.FoodItemID)
		}
		if err != nil {
			return nil, err
		}
		if !f.Available {
			return nil, fmt.Errorf("%w: %s", apperr.ErrStaleCartItem, f.Name)
		}
		if f.RestaurantID != cart.RestaurantID {
			return nil, fmt.Errorf("%w: %s moved to another restaurant", apperr.ErrStaleCartItem, f.Name)
		}
		subtotal = subtotal.Add(f.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
		lines = append(lines, entity.OrderItem{
			FoodItemID: f.ID,
			Name:       f.Name,
			UnitPrice:  f.Price,
			Qty:        it.Qty,
		})
	}

	deliveryFee := DefaultDeliveryFee
	if rest, err := s.RestRepo.FindByID(cart.RestaurantID); err == nil && rest.DeliveryFee.IsPositive() {
		deliveryFee = rest.DeliveryFee
	}

	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(deliveryFee).Add(tax)

	order := entity.Order{
		Number:              uuid.NewString(),
		UserID:              userID,
		RestaurantID:        cart.RestaurantID,
		Status:              entity.StatusPending,
		Subtotal:            subtotal,
		DeliveryFee:         deliveryFee,
		Tax:                 tax,
		Total:               total,
		Street:              in.Address.Street,
		City:                in.Address.City,
		State:               in.Address.State,
		ZipCode:             in.Address.ZipCode,
		Country:             in.Address.Country,
		PaymentMethod:       in.PaymentMethod,
		SpecialInstructions: in.SpecialInstructions,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.OrderRepo.CreateOrderItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = lines
	if s.Notifier != nil {
		s.Notifier.NotifyOrder(&order)
	}
	return &order, nil
}
