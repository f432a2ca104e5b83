package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. These are the only values ever written to orders.status.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCard   = "card"
	PaymentCash   = "cash"
	PaymentPaypal = "paypal"
)

type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex" json:"number"`

	Subtotal    decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric" json:"deliveryFee"`
	Tax         decimal.Decimal `gorm:"type:numeric" json:"tax"`
	Total       decimal.Decimal `gorm:"type:numeric" json:"total"`

	// delivery address snapshot
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `gorm:"default:USA" json:"country"`

	PaymentMethod       string `gorm:"default:card" json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`

	Status      string     `gorm:"default:pending;index" json:"status"`
	DeliveredAt *time.Time `json:"deliveredAt"`

	// pointers so non-preloaded views omit them instead of emitting zero structs
	UserID uint  `json:"userId"`
	User   *User `json:"user,omitempty"`

	RestaurantID uint        `json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`

	Items []OrderItem `json:"items"`
}

// ValidStatus reports whether s is one of the five recognized statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether an order in status s can never change again.
func TerminalStatus(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidPaymentMethod reports whether m is accepted at the data-model level.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentPaypal:
		return true
	}
	return false
}
