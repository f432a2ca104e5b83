package services

import (
	"errors"
	"testing"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/fragisir/foodWebsite/pkg/apperr"

	"github.com/shopspring/decimal"
)

func validAddress() DeliveryAddressIn {
	return DeliveryAddressIn{Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001"}
}

func TestCheckoutTotals(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")

	if err := cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want float64
	}{
		{"subtotal", order.Subtotal, 20.00},
		{"deliveryFee", order.DeliveryFee, 2.99},
		{"tax", order.Tax, 1.60},
		{"total", order.Total, 24.59},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromFloat(c.want)) {
			t.Errorf("%s = %s, want %v", c.name, c.got, c.want)
		}
	}
	if order.Status != entity.StatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.Number == "" {
		t.Error("order number not assigned")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newCheckoutService(db)
	user := seedUser(t, db, "a@test.com", "user")

	_, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "card"})
	if !errors.Is(err, apperr.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}

	// no submission happened
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders created = %d, want 0", count)
	}
}

func TestCheckoutMissingAddressField(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	addr := validAddress()
	addr.ZipCode = " "
	_, err := svc.Checkout(user.ID, &CheckoutIn{Address: addr, PaymentMethod: "card"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	// cart untouched so the user can retry
	out, _ := cartSvc.Get(user.ID)
	if len(out.Cart.Items) != 1 {
		t.Errorf("cart items = %d, want 1", len(out.Cart.Items))
	}
}

func TestCheckoutUnknownPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	_, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "bitcoin"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCheckoutPaypalAccepted(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	order, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "paypal"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.PaymentMethod != entity.PaymentPaypal {
		t.Errorf("paymentMethod = %q, want paypal", order.PaymentMethod)
	}
}

func TestCheckoutStaleCartItem(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	// item withdrawn from the catalog after it was carted
	db.Model(&entity.FoodItem{}).Where("id = ?", food.ID).Update("available", false)

	_, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "card"})
	if !errors.Is(err, apperr.ErrStaleCartItem) {
		t.Fatalf("err = %v, want ErrStaleCartItem", err)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders created = %d, want 0", count)
	}
}

func TestCheckoutRepricesFromCatalog(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID, Qty: 2})

	// price changed between carting and checkout
	db.Model(&entity.FoodItem{}).Where("id = ?", food.ID).
		Update("price", decimal.NewFromFloat(12.00))

	order, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "cash"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !order.Subtotal.Equal(decimal.NewFromFloat(24.00)) {
		t.Errorf("subtotal = %s, want 24.00 (current catalog price, not cart snapshot)", order.Subtotal)
	}
}

func TestCheckoutDefaultDeliveryFee(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "No Fee Diner", 0)
	food := seedFood(t, db, rest.ID, "Toast", 5.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	order, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !order.DeliveryFee.Equal(DefaultDeliveryFee) {
		t.Errorf("deliveryFee = %s, want default %s", order.DeliveryFee, DefaultDeliveryFee)
	}
}

func TestCheckoutDefaultsCountry(t *testing.T) {
	db := setupTestDB(t)
	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	rest := seedRestaurant(t, db, "Pizza Paradise", 2.99)
	food := seedFood(t, db, rest.ID, "Margherita", 10.00)
	user := seedUser(t, db, "a@test.com", "user")
	cartSvc.Add(user.ID, &AddToCartIn{FoodItemID: food.ID})

	order, err := svc.Checkout(user.ID, &CheckoutIn{Address: validAddress(), PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Country != "USA" {
		t.Errorf("country = %q, want USA", order.Country)
	}
}
