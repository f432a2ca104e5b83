package services

import (
	"errors"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"
	"github.com/fragisir/foodWebsite/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService maintains the single in-progress order draft per user.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

type AddToCartIn struct {
	FoodItemID uint `json:"foodItemId" binding:"required"`
	Qty        int  `json:"qty"`
	// ReplaceCart acknowledges clearing a cart locked to another restaurant.
	ReplaceCart bool `json:"replaceCart"`
}

type CartOut struct {
	Cart       *entity.Cart    `json:"cart"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Get returns the cart with its derived totals. Both are recomputed from the
// line items on every call, never cached.
func (s *CartService) Get(userID uint) (*CartOut, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	return &CartOut{Cart: c, TotalItems: TotalItems(c), Subtotal: Subtotal(c)}, nil
}

// TotalItems sums quantities across all line items.
func TotalItems(c *entity.Cart) int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// Subtotal sums unitPrice × qty across all line items.
func Subtotal(c *entity.Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return sum
}

// Add puts a food item into the cart. A cart locked to another restaurant
// rejects the add with ErrCartConflict unless ReplaceCart is set, in which
// case the old contents are dropped first. Adding a food item already in the
// cart sums the quantities.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	f, err := s.FoodRepo.GetBasics(in.FoodItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !f.Available {
		return apperr.Validationf("food item %q is not available", f.Name)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateCart(tx, userID, f.RestaurantID)
		if err != nil {
			return err
		}

		if c.RestaurantID != 0 && c.RestaurantID != f.RestaurantID {
			if !in.ReplaceCart {
				return apperr.ErrCartConflict
			}
			if err := s.CartRepo.ClearCart(tx, userID); err != nil {
				return err
			}
			c.RestaurantID = 0
		}
		// cart just created or just cleared: lock it to this restaurant
		if c.RestaurantID == 0 {
			c.RestaurantID = f.RestaurantID
			if err := tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
				Update("restaurant_id", f.RestaurantID).Error; err != nil {
				return err
			}
		}

		line := &entity.CartItem{
			FoodItemID: f.ID,
			Qty:        in.Qty,
			UnitPrice:  f.Price,
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// UpdateQty sets a line's quantity; qty <= 0 removes it.
func (s *CartService) UpdateQty(userID, foodItemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, foodItemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, foodItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, foodItemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
