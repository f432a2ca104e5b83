package repository

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty one (not persisted)
// so callers never have to special-case a missing row.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.FoodItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// GetOrCreateCart reads the user's cart, creating it locked to restaurantID
// when it does not exist yet. The create goes through tx so a failed add
// rolls the cart row back with it.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, RestaurantID: restaurantID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem adds a line or, when the food item is already in the cart, sums
// the quantities.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, row.FoodItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.UnitPrice = row.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty sets the quantity directly; qty <= 0 removes the line instead.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, foodItemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, foodItemID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE food_item_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, foodItemID, userID).Error
}

// RemoveItem deletes a line and, when the cart becomes empty, resets the
// restaurant lock so a new restaurant can be set on the next add.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, foodItemID uint) error {
	if err := tx.
		Where("food_item_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", foodItemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("restaurant_id", 0).Error
}
