package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CuisineType string `json:"cuisineType"`

	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	Rating      float64 `gorm:"default:4.5" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`

	DeliveryTime string          `gorm:"default:'30-40 mins'" json:"deliveryTime"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric" json:"deliveryFee"`
	MinOrder     decimal.Decimal `gorm:"type:numeric" json:"minOrder"`

	IsOpen   bool `gorm:"default:true" json:"isOpen"`
	Featured bool `gorm:"default:false" json:"featured"`

	FoodItems []FoodItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
