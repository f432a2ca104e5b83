package routes

import (
	"github.com/fragisir/foodWebsite/configs"
	"github.com/fragisir/foodWebsite/controllers"
	"github.com/fragisir/foodWebsite/middlewares"
	"github.com/fragisir/foodWebsite/repository"
	"github.com/fragisir/foodWebsite/services"
	"github.com/fragisir/foodWebsite/utils"
	"github.com/fragisir/foodWebsite/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	authSvc := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	foodSvc := services.NewFoodService(foodRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, foodRepo, orderRepo, restRepo)
	checkoutSvc.Notifier = hub
	orderSvc := services.NewOrderService(db, orderRepo)
	orderSvc.Notifier = hub
	reviewSvc := services.NewReviewService(db, reviewRepo, restRepo)
	adminSvc := services.NewAdminService(adminRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, foodSvc)
	foodCtrl := controllers.NewFoodController(foodSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(checkoutSvc, orderSvc, cartSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/verify-otp", authCtrl.VerifyOTP)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PUT("/profile", authCtrl.UpdateProfile)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/foods", restCtrl.Foods)
	r.GET("/foods", foodCtrl.List)
	r.GET("/foods/:id", foodCtrl.Detail)
	r.GET("/reviews/:restaurantId", reviewCtrl.ListForRestaurant)

	// Cart (user)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	orders := r.Group("/orders", auth)
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("/my", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id/cancel", orderCtrl.Cancel)
	}

	// Reviews (user)
	r.POST("/reviews", auth, reviewCtrl.Create)

	// Admin back office
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/analytics", adminCtrl.Analytics)
		admin.GET("/users", adminCtrl.Users)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.PUT("/users/:id/toggle", adminCtrl.ToggleUser)
		admin.GET("/orders", adminCtrl.Orders)
		admin.PUT("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		admin.POST("/restaurants", restCtrl.Create)
		admin.PUT("/restaurants/:id", restCtrl.Update)
		admin.DELETE("/restaurants/:id", restCtrl.Delete)
		admin.POST("/foods", foodCtrl.Create)
		admin.PUT("/foods/:id", foodCtrl.Update)
		admin.DELETE("/foods/:id", foodCtrl.Delete)
	}

	// live order events (admins see all, users their own)
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
