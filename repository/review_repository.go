package repository

import (
	"github.com/fragisir/foodWebsite/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) FindByRestaurant(restID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("User").
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
