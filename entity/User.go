package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:user" json:"role"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	// password reset OTP, valid for a 2-minute window
	ResetOTP          string     `json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`

	// preload only when needed
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
	Cart    *Cart    `gorm:"foreignKey:UserID" json:"-"`
}
