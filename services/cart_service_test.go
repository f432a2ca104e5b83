package services

import (
	"errors"
	"testing"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"

	"github.com/shopspring/decimal"
)

func TestAddItemLocksRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 12.99)
	user := seedUser(t, db, "a@test.com", "user")

	if err := svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Cart.RestaurantID != rest.ID {
		t.Errorf("restaurantId = %d, want %d", out.Cart.RestaurantID, rest.ID)
	}
	if out.TotalItems != 2 {
		t.Errorf("totalItems = %d, want 2", out.TotalItems)
	}
}

func TestAddItemFromOtherRestaurantConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	restA := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	restB := seedRestaurant(t, db, "Burger Barn", 1.99)
	pizza := seedFood(t, db, restA.ID, "Margherita", 12.99)
	burger := seedFood(t, db, restB.ID, "Cheeseburger", 9.99)
	user := seedUser(t, db, "a@test.com", "user")

	if err := svc.Add(user.ID, &AddToCartIn{FoodItemID: pizza.ID}); err != nil {
		t.Fatalf("add pizza: %v", err)
	}

	// declined confirmation: cart must be unchanged
	err := svc.Add(user.ID, &AddToCartIn{FoodItemID: burger.ID})
	if !errors.Is(err, apperr.ErrCartConflict) {
		t.Fatalf("err = %v, want ErrCartConflict", err)
	}
	out, _ := svc.Get(user.ID)
	if out.Cart.RestaurantID != restA.ID || len(out.Cart.Items) != 1 {
		t.Fatalf("cart changed after declined add: restaurant=%d items=%d", out.Cart.RestaurantID, len(out.Cart.Items))
	}

	// confirmed: old contents dropped, cart re-locked
	if err := svc.Add(user.ID, &AddToCartIn{FoodItemID: burger.ID, ReplaceCart: true}); err != nil {
		t.Fatalf("replace add: %v", err)
	}
	out, _ = svc.Get(user.ID)
	if out.Cart.RestaurantID != restB.ID {
		t.Errorf("restaurantId = %d, want %d", out.Cart.RestaurantID, restB.ID)
	}
	if len(out.Cart.Items) != 1 || out.Cart.Items[0].FoodItemID != burger.ID {
		t.Errorf("cart should hold only the burger, got %+v", out.Cart.Items)
	}
}

func TestAddSameItemSumsQuantities(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 12.99)
	user := seedUser(t, db, "a@test.com", "user")

	svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 1})
	svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 3})

	out, _ := svc.Get(user.ID)
	if len(out.Cart.Items) != 1 {
		t.Fatalf("items = %d, want 1 merged line", len(out.Cart.Items))
	}
	if out.Cart.Items[0].Qty != 4 {
		t.Errorf("qty = %d, want 4", out.Cart.Items[0].Qty)
	}
}

func TestUpdateQtyZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		db := setupTestDB(t)
		svc := newCartService(db)

		rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
		food := seedFood(t, db, rest.ID, "Margherita", 12.99)
		user := seedUser(t, db, "a@test.com", "user")

		svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 2})
		if err := svc.UpdateQty(user.ID, food.ID, qty); err != nil {
			t.Fatalf("updateQty(%d): %v", qty, err)
		}

		out, _ := svc.Get(user.ID)
		if len(out.Cart.Items) != 0 {
			t.Errorf("updateQty(%d) left %d items, want 0", qty, len(out.Cart.Items))
		}
		if out.Cart.RestaurantID != 0 {
			t.Errorf("updateQty(%d): restaurantId = %d, want 0 for empty cart", qty, out.Cart.RestaurantID)
		}
	}
}

func TestUpdateQtySetsDirectly(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 12.99)
	user := seedUser(t, db, "a@test.com", "user")

	svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 5})
	if err := svc.UpdateQty(user.ID, food.ID, 2); err != nil {
		t.Fatalf("updateQty: %v", err)
	}

	out, _ := svc.Get(user.ID)
	if out.Cart.Items[0].Qty != 2 {
		t.Errorf("qty = %d, want 2 (set, not summed)", out.Cart.Items[0].Qty)
	}
}

func TestRemoveLastItemClearsRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 12.99)
	user := seedUser(t, db, "a@test.com", "user")

	svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})
	if err := svc.RemoveItem(user.ID, food.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	out, _ := svc.Get(user.ID)
	if out.Cart.RestaurantID != 0 {
		t.Errorf("restaurantId = %d, want 0", out.Cart.RestaurantID)
	}
}

func TestSubtotalRecomputedAfterMutation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	pizza := seedFood(t, db, rest.ID, "Margherita", 12.50)
	soda := seedFood(t, db, rest.ID, "Soda", 2.00)
	user := seedUser(t, db, "a@test.com", "user")

	svc.Add(user.ID, &AddToCartIn{FoodItemID: pizza.ID, Qty: 2})
	svc.Add(user.ID, &AddToCartIn{FoodItemID: soda.ID, Qty: 3})

	out, _ := svc.Get(user.ID)
	want := decimal.NewFromFloat(31.00) // 2×12.50 + 3×2.00
	if !out.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", out.Subtotal, want)
	}

	svc.UpdateQty(user.ID, soda.ID, 1)
	out, _ = svc.Get(user.ID)
	want = decimal.NewFromFloat(27.00)
	if !out.Subtotal.Equal(want) {
		t.Errorf("subtotal after update = %s, want %s", out.Subtotal, want)
	}
}

func TestClearCartRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 12.99)
	user := seedUser(t, db, "a@test.com", "user")

	svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 3})
	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	out, _ := svc.Get(user.ID)
	if out.TotalItems != 0 {
		t.Errorf("totalItems = %d, want 0", out.TotalItems)
	}
	if !out.Subtotal.IsZero() {
		t.Errorf("subtotal = %s, want 0", out.Subtotal)
	}
	if out.Cart.RestaurantID != 0 {
		t.Errorf("restaurantId = %d, want 0", out.Cart.RestaurantID)
	}
}

func TestAddUnknownFoodItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "a@test.com", "user")

	err := svc.Add(user.ID, &AddToCartIn{FoodItemID: 999})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFailedAddRollsBackCartRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "a@test.com", "user")
	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)

	// make the line insert fail after the cart row is created
	if err := db.Migrator().DropTable(&entity.CartItem{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if err := svc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 1}); err == nil {
		t.Fatal("add succeeded without a cart_items table")
	}

	var count int64
	db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("cart rows = %d after rolled-back add, want 0", count)
	}
}
