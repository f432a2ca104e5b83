package entity

import (
	"gorm.io/gorm"
)

// Cart holds one user's in-progress order draft. RestaurantID is 0 while the
// cart is empty; a non-empty cart is locked to a single restaurant.
type Cart struct {
	gorm.Model
	UserID       uint       `json:"userId" gorm:"uniqueIndex"`
	User         User       `json:"-"`
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
