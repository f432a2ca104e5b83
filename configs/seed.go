package configs

import (
	"log"

	"github.com/fragisir/foodWebsite/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedDemo fills an empty database with a small browsable catalog.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	restaurants := []struct {
		r     entity.Restaurant
		foods []entity.FoodItem
	}{
		{
			r: entity.Restaurant{
				Name:        "Pizza Paradise",
				Description: "Authentic Italian pizzas baked in a wood-fired oven",
				Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591",
				CuisineType: "Italian",
				Street:      "123 Main St", City: "New York", State: "NY", ZipCode: "10001",
				DeliveryTime: "25-35 mins",
				DeliveryFee:  decimal.NewFromFloat(2.99),
				MinOrder:     decimal.NewFromInt(10),
				Featured:     true,
			},
			foods: []entity.FoodItem{
				{Name: "Margherita Pizza", Description: "Fresh mozzarella, tomatoes, basil", Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002", Price: decimal.NewFromFloat(12.99), Category: "Pizza", IsVegetarian: true, Popular: true},
				{Name: "Pepperoni Pizza", Description: "Classic pepperoni with mozzarella", Image: "https://images.unsplash.com/photo-1628840042765-356cda07504e", Price: decimal.NewFromFloat(14.99), Category: "Pizza", Popular: true},
			},
		},
		{
			r: entity.Restaurant{
				Name:        "Burger Barn",
				Description: "Juicy handcrafted burgers and crispy fries",
				Image:       "https://images.unsplash.com/photo-1571091718767-18b5b1457add",
				CuisineType: "American",
				Street:      "456 Oak Ave", City: "New York", State: "NY", ZipCode: "10002",
				DeliveryTime: "20-30 mins",
				DeliveryFee:  decimal.NewFromFloat(1.99),
				MinOrder:     decimal.NewFromInt(8),
			},
			foods: []entity.FoodItem{
				{Name: "Classic Cheeseburger", Description: "Beef patty, cheddar, lettuce, tomato", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd", Price: decimal.NewFromFloat(9.99), Category: "Burger", Popular: true},
				{Name: "Veggie Burger", Description: "Plant-based patty with avocado", Image: "https://images.unsplash.com/photo-1520072959219-c595dc870360", Price: decimal.NewFromFloat(10.99), Category: "Burger", IsVegetarian: true, IsVegan: true},
			},
		},
		{
			r: entity.Restaurant{
				Name:        "Sushi Station",
				Description: "Fresh sushi and sashimi prepared daily",
				Image:       "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
				CuisineType: "Asian",
				Street:      "789 Pine Rd", City: "New York", State: "NY", ZipCode: "10003",
				DeliveryTime: "30-40 mins",
				DeliveryFee:  decimal.NewFromFloat(3.99),
				MinOrder:     decimal.NewFromInt(15),
				Featured:     true,
			},
			foods: []entity.FoodItem{
				{Name: "California Roll", Description: "Crab, avocado, cucumber", Image: "https://images.unsplash.com/photo-1617196034796-73dfa7b1fd56", Price: decimal.NewFromFloat(8.99), Category: "Sushi", Popular: true},
				{Name: "Salmon Nigiri", Description: "Fresh salmon over seasoned rice", Image: "https://images.unsplash.com/photo-1611518040286-9af8ba97ab30", Price: decimal.NewFromFloat(11.99), Category: "Sushi", SpicyLevel: 0},
			},
		},
	}

	for _, seed := range restaurants {
		if err := db.Create(&seed.r).Error; err != nil {
			return err
		}
		for i := range seed.foods {
			seed.foods[i].RestaurantID = seed.r.ID
		}
		if err := db.Create(&seed.foods).Error; err != nil {
			return err
		}
	}

	log.Println("demo catalog seeded")
	return nil
}
