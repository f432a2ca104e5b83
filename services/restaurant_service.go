// services/restaurant_service.go
package services

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List(f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	return s.Repo.FindAll(f)
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return rest, err
}

func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	if rest.Name == "" {
		return apperr.Validationf("name is required")
	}
	return s.Repo.Create(rest)
}

func (s *RestaurantService) Update(rest *entity.Restaurant) error {
	return s.Repo.Update(rest)
}

func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
