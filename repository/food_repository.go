package repository

import (
	"github.com/fragisir/foodWebsite/entity"
	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

// FoodFilter narrows the public food listing.
type FoodFilter struct {
	RestaurantID uint
	Category     string
	Search       string
	Vegetarian   bool
	Vegan        bool
	Popular      bool
	Sort         string // "price-low" | "price-high" | "rating" | default newest
}

func (r *FoodRepository) FindAll(f FoodFilter) ([]entity.FoodItem, error) {
	q := r.DB.Model(&entity.FoodItem{}).Preload("Restaurant")
	if f.RestaurantID != 0 {
		q = q.Where("restaurant_id = ?", f.RestaurantID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.Vegetarian {
		q = q.Where("is_vegetarian = ?", true)
	}
	if f.Vegan {
		q = q.Where("is_vegan = ?", true)
	}
	if f.Popular {
		q = q.Where("popular = ?", true)
	}
	switch f.Sort {
	case "price-low":
		q = q.Order("price ASC")
	case "price-high":
		q = q.Order("price DESC")
	case "rating":
		q = q.Order("rating DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var foods []entity.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var food entity.FoodItem
	if err := r.DB.Preload("Restaurant").First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) FindByRestaurant(restID uint) ([]entity.FoodItem, error) {
	var foods []entity.FoodItem
	err := r.DB.Where("restaurant_id = ?", restID).Find(&foods).Error
	return foods, err
}

// GetBasics loads just what pricing and cart checks need.
func (r *FoodRepository) GetBasics(id uint) (entity.FoodItem, error) {
	var f entity.FoodItem
	err := r.DB.Select("id, name, price, restaurant_id, available").First(&f, id).Error
	return f, err
}

func (r *FoodRepository) Create(food *entity.FoodItem) error {
	return r.DB.Create(food).Error
}

func (r *FoodRepository) Update(food *entity.FoodItem) error {
	return r.DB.Save(food).Error
}

func (r *FoodRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}
