package services

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB       *gorm.DB
	Repo     *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, RestRepo: restRepo}
}

// Create stores a review and folds it into the restaurant's rating.
func (s *ReviewService) Create(userID, restID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.Validationf("rating must be between 1 and 5")
	}
	if _, err := s.RestRepo.FindByID(restID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}

	rev := &entity.Review{
		UserID:       userID,
		RestaurantID: restID,
		Rating:       rating,
		Comment:      comment,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rev); err != nil {
			return err
		}
		return s.RestRepo.RefreshRating(tx, restID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForRestaurant(restID uint) ([]entity.Review, error) {
	return s.Repo.FindByRestaurant(restID)
}
