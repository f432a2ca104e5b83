package repository

import (
	"time"

	"github.com/fragisir/foodWebsite/entity"

	"gorm.io/gorm"
)

// AdminRepository holds the dashboard aggregation queries.
type AdminRepository struct{ DB *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{DB: db} }

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DayStat struct {
	Day     string  `json:"day"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type TopFood struct {
	FoodItemID uint    `json:"foodItemId"`
	Name       string  `json:"name"`
	TotalSold  int64   `json:"totalSold"`
	Revenue    float64 `json:"revenue"`
}

type TopRestaurant struct {
	RestaurantID uint    `json:"restaurantId"`
	Name         string  `json:"name"`
	OrderCount   int64   `json:"orderCount"`
	Revenue      float64 `json:"revenue"`
}

func (r *AdminRepository) CountUsers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", "user").Count(&n).Error
	return n, err
}

func (r *AdminRepository) CountRestaurants() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&n).Error
	return n, err
}

func (r *AdminRepository) CountOrders() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// TotalRevenue sums delivered orders only.
func (r *AdminRepository) TotalRevenue() (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("status = ?", entity.StatusDelivered).
		Scan(&row).Error
	return row.Total, err
}

func (r *AdminRepository) OrdersByStatus() ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out).Error
	return out, err
}

// OrdersPerDay aggregates count and revenue per calendar day since `since`.
func (r *AdminRepository) OrdersPerDay(since time.Time) ([]DayStat, error) {
	var out []DayStat
	err := r.DB.Model(&entity.Order{}).
		Select("strftime('%Y-%m-%d', created_at) AS day, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&out).Error
	return out, err
}

func (r *AdminRepository) TopFoodItems(limit int) ([]TopFood, error) {
	var out []TopFood
	err := r.DB.Table("order_items").
		Select("food_item_id, name, SUM(qty) AS total_sold, SUM(unit_price * qty) AS revenue").
		Where("deleted_at IS NULL").
		Group("food_item_id, name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AdminRepository) TopRestaurants(limit int) ([]TopRestaurant, error) {
	var out []TopRestaurant
	err := r.DB.Table("orders AS o").
		Select("o.restaurant_id, r.name, COUNT(*) AS order_count, COALESCE(SUM(o.total), 0) AS revenue").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.deleted_at IS NULL").
		Group("o.restaurant_id, r.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *AdminRepository) RecentOrders(limit int) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("User").Preload("Restaurant").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}
