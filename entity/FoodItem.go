package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `gorm:"type:numeric" json:"price"`
	Category    string          `json:"category"`

	IsVegetarian bool `gorm:"default:false" json:"isVegetarian"`
	IsVegan      bool `gorm:"default:false" json:"isVegan"`
	SpicyLevel   int  `gorm:"default:0" json:"spicyLevel"`

	Rating      float64 `gorm:"default:4.5" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`

	Available bool `gorm:"default:true" json:"available"`
	Popular   bool `gorm:"default:false" json:"popular"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload for name/fee only

	OrderItems []OrderItem `json:"-"`
}
