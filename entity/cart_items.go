package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"foodItem"`

	Qty int `json:"qty"`

	// display snapshot only; checkout reprices from the catalog
	UnitPrice decimal.Decimal `gorm:"type:numeric" json:"unitPrice"`
}
