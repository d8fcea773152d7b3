package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/analytics"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/auth"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/cart"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/db"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/market"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/middleware"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/notification"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/order"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/pricing"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/product"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/review"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	productRepo := product.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	reviewRepo := review.NewPostgresRepository(pgDB)
	notificationRepo := notification.NewPostgresRepository(pgDB)
	analyticsRepo := analytics.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	notificationService := notification.NewService(notificationRepo)

	productService := product.NewService(productRepo, r2Client)

	cartService := cart.NewService(cartRepo, productService)

	orderService := order.NewService(
		orderRepo,
		cartService,
		productService,
		notificationService,
	)

	reviewService := review.NewService(
		reviewRepo,
		productService,
		notificationService,
	)

	marketService := market.NewService(pgDB)

	analyticsService := analytics.NewService(analyticsRepo)

	pricingService := pricing.NewService(
		productService,
		marketService,
		analyticsRepo,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	reviewHandler := review.NewHandler(reviewService)
	notificationHandler := notification.NewHandler(notificationService)
	marketHandler := market.NewHandler(marketService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	pricingHandler := pricing.NewHandler(pricingService)

	// ───────────────────────── PUBLIC CATALOG ─────────────────────────
	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)
	r.GET("/products/:id/reviews", reviewHandler.ListForProduct)
	r.GET("/market/insights", marketHandler.Get)

	// ───────────────────────── SELLER ROUTES ─────────────────────────
	sellers := r.Group("/products")
	sellers.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleSeller),
	)
	{
		sellers.POST("", productHandler.Create)
		sellers.GET("/mine", productHandler.ListMine)
		sellers.PUT("/:id", productHandler.Update)
		sellers.POST("/:id/archive", productHandler.Archive)
		sellers.POST("/:id/images", productHandler.UploadImage)
		sellers.GET("/:id/price-suggestion", pricingHandler.GetSuggestion)
	}

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleBuyer),
	)
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:product_id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:product_id", cartHandler.RemoveItem)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("/:id", orderHandler.Get)
		orders.GET("", middleware.RequireRole(auth.RoleBuyer), orderHandler.ListMine)
		orders.POST("", middleware.RequireRole(auth.RoleBuyer), orderHandler.Checkout)
		orders.POST("/:id/cancel", middleware.RequireRole(auth.RoleBuyer), orderHandler.Cancel)
		orders.PATCH("/:id/status", middleware.RequireRole(auth.RoleSeller), orderHandler.UpdateStatus)
	}

	r.GET("/sales",
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleSeller),
		orderHandler.ListSales,
	)

	// ───────────────────────── REVIEW ROUTES ─────────────────────────
	r.POST("/products/:id/reviews",
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleBuyer),
		reviewHandler.Create,
	)

	// ───────────────────────── NOTIFICATION ROUTES ─────────────────────────
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
	}

	// ───────────────────────── ANALYTICS ROUTES ─────────────────────────
	analyticsGroup := r.Group("/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())
	{
		analyticsGroup.GET("/products/:id/moving-average", analyticsHandler.MovingAverage)
		analyticsGroup.GET("/products/:id/volatility", analyticsHandler.Volatility)
		analyticsGroup.GET("/products/:id/trend", analyticsHandler.Trend)
		analyticsGroup.GET("/products/:id/anomalies", analyticsHandler.Anomalies)
		analyticsGroup.GET("/products/:id/seasonal", analyticsHandler.Seasonal)
		analyticsGroup.GET("/products/:id/forecast", analyticsHandler.Forecast)
		analyticsGroup.GET("/elasticity", analyticsHandler.Elasticity)
		analyticsGroup.GET("/concentration", analyticsHandler.Concentration)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Market snapshots (manual fallback when the worker is down)
		admin.POST("/market/recompute", marketHandler.Recompute)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
