package repository

import (
	"time"

	"github.com/fragisir/foodWebsite/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetResetOTP stores the OTP and its expiry for a password reset.
func (r *UserRepository) SetResetOTP(userID uint, otp string, expiresAt *time.Time) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"reset_otp":            otp,
			"reset_otp_expires_at": expiresAt,
		}).Error
}

// FindByEmailAndOTP returns the user only while the OTP is still valid.
func (r *UserRepository) FindByEmailAndOTP(email, otp string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("email = ? AND reset_otp = ? AND reset_otp_expires_at > ?",
		email, otp, time.Now()).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Delete(userID uint) error {
	return r.DB.Delete(&entity.User{}, userID).Error
}
