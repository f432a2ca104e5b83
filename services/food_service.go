// services/food_service.go
package services

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"gorm.io/gorm"
)

type FoodService struct {
	Repo     *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
}

func NewFoodService(repo *repository.FoodRepository, restRepo *repository.RestaurantRepository) *FoodService {
	return &FoodService{Repo: repo, RestRepo: restRepo}
}

func (s *FoodService) List(f repository.FoodFilter) ([]entity.FoodItem, error) {
	return s.Repo.FindAll(f)
}

func (s *FoodService) Get(id uint) (*entity.FoodItem, error) {
	food, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return food, err
}

func (s *FoodService) ListByRestaurant(restID uint) ([]entity.FoodItem, error) {
	if _, err := s.RestRepo.FindByID(restID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return s.Repo.FindByRestaurant(restID)
}

func (s *FoodService) Create(food *entity.FoodItem) error {
	if food.Name == "" {
		return apperr.Validationf("name is required")
	}
	if food.Price.IsNegative() {
		return apperr.Validationf("price cannot be negative")
	}
	if _, err := s.RestRepo.FindByID(food.RestaurantID); err != nil {
		return apperr.Validationf("restaurant %d does not exist", food.RestaurantID)
	}
	return s.Repo.Create(food)
}

func (s *FoodService) Update(food *entity.FoodItem) error {
	return s.Repo.Update(food)
}

func (s *FoodService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
