package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `json:"qty"`

	// name/price snapshot taken from the catalog at assembly time
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric" json:"unitPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`
}
