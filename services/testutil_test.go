package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Uint64

// setupTestDB opens a fresh in-memory database per call. The name keeps every
// pooled connection on the same database; the sequence number keeps repeated
// calls within one test from reattaching to a still-open database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string, fee float64) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:        name,
		DeliveryFee: decimal.NewFromFloat(fee),
	}
	if err := db.Create(rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return rest
}

func seedFood(t *testing.T, db *gorm.DB, restID uint, name string, price float64) *entity.FoodItem {
	t.Helper()
	food := &entity.FoodItem{
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		RestaurantID: restID,
		Available:    true,
	}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return food
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, Password: "x", Role: role, IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewCartRepository(db),
		repository.NewFoodRepository(db),
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
	)
}
