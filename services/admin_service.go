package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"gorm.io/gorm"
)

// AdminService backs the dashboard and user management endpoints.
type AdminService struct {
	Repo     *repository.AdminRepository
	UserRepo *repository.UserRepository
}

func NewAdminService(repo *repository.AdminRepository, userRepo *repository.UserRepository) *AdminService {
	return &AdminService{Repo: repo, UserRepo: userRepo}
}

type AnalyticsOut struct {
	Stats struct {
		TotalUsers       int64   `json:"totalUsers"`
		TotalRestaurants int64   `json:"totalRestaurants"`
		TotalOrders      int64   `json:"totalOrders"`
		TotalRevenue     float64 `json:"totalRevenue"`
	} `json:"stats"`
	OrdersByStatus []repository.StatusCount    `json:"ordersByStatus"`
	OrdersPerDay   []repository.DayStat        `json:"ordersPerDay"`
	TopFoodItems   []repository.TopFood        `json:"topFoodItems"`
	TopRestaurants []repository.TopRestaurant  `json:"topRestaurants"`
	RecentOrders   []entity.Order              `json:"recentOrders"`
}

// Analytics aggregates the dashboard numbers: overall counts, revenue of
// delivered orders, per-status and per-day breakdowns for the last 7 days,
// and top-5 leaderboards.
func (s *AdminService) Analytics() (*AnalyticsOut, error) {
	var out AnalyticsOut
	var err error

	if out.Stats.TotalUsers, err = s.Repo.CountUsers(); err != nil {
		return nil, err
	}
	if out.Stats.TotalRestaurants, err = s.Repo.CountRestaurants(); err != nil {
		return nil, err
	}
	if out.Stats.TotalOrders, err = s.Repo.CountOrders(); err != nil {
		return nil, err
	}
	if out.Stats.TotalRevenue, err = s.Repo.TotalRevenue(); err != nil {
		return nil, err
	}
	if out.OrdersByStatus, err = s.Repo.OrdersByStatus(); err != nil {
		return nil, err
	}
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	if out.OrdersPerDay, err = s.Repo.OrdersPerDay(sevenDaysAgo); err != nil {
		return nil, err
	}
	if out.TopFoodItems, err = s.Repo.TopFoodItems(5); err != nil {
		return nil, err
	}
	if out.TopRestaurants, err = s.Repo.TopRestaurants(5); err != nil {
		return nil, err
	}
	if out.RecentOrders, err = s.Repo.RecentOrders(5); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) ListUsers() ([]entity.User, error) {
	return s.UserRepo.ListAll()
}

// DeleteUser refuses to delete admin accounts.
func (s *AdminService) DeleteUser(userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if user.Role == "admin" {
		return fmt.Errorf("%w: cannot delete admin users", apperr.ErrForbidden)
	}
	return s.UserRepo.Delete(userID)
}

// ToggleUser flips a non-admin account's active flag.
func (s *AdminService) ToggleUser(userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role == "admin" {
		return nil, fmt.Errorf("%w: cannot modify admin users", apperr.ErrForbidden)
	}
	if err := s.UserRepo.Update(userID, map[string]any{"is_active": !user.IsActive}); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}
