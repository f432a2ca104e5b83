// repository/restaurant_repository.go
package repository

import (
	"github.com/fragisir/foodWebsite/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantFilter narrows the public listing.
type RestaurantFilter struct {
	Cuisine  string
	Search   string
	Featured bool
	Sort     string // "rating" | "name" | default newest
}

func (r *RestaurantRepository) FindAll(f RestaurantFilter) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if f.Cuisine != "" {
		q = q.Where("cuisine_type = ?", f.Cuisine)
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	switch f.Sort {
	case "rating":
		q = q.Order("rating DESC")
	case "name":
		q = q.Order("name ASC")
	default:
		q = q.Order("created_at DESC")
	}

	var rests []entity.Restaurant
	err := q.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}

// RefreshRating recomputes rating/review_count from the reviews table.
func (r *RestaurantRepository) RefreshRating(tx *gorm.DB, restID uint) error {
	return tx.Exec(`
		UPDATE restaurants
		   SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE restaurant_id = ? AND deleted_at IS NULL), 0),
		       review_count = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ? AND deleted_at IS NULL)
		 WHERE id = ?
	`, restID, restID, restID).Error
}
