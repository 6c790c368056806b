package main

import (
	"log"

	"golang-jewelry-backend/configs"
	"golang-jewelry-backend/internal/cart"
	"golang-jewelry-backend/internal/handlers"
	"golang-jewelry-backend/internal/middleware"
	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/internal/services"
	"golang-jewelry-backend/pkg/auth"
	"golang-jewelry-backend/pkg/cache"
	"golang-jewelry-backend/pkg/database"
	"golang-jewelry-backend/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connections
	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to databases:", err)
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis cache. Redis is not required to serve traffic:
	// without it carts simply don't persist between requests and reads
	// hit the databases directly.
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Println("Redis unavailable, carts will not persist between requests")
	} else {
		defer redisCache.Close()
	}

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager (access: config hours, refresh: 30 days)
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.Postgres)
	categoryRepo := repositories.NewCategoryRepository(db.Postgres)
	productRepo := repositories.NewProductRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)
	addressRepo := repositories.NewAddressRepository(db.Postgres)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtManager, redisCache)
	productService := services.NewProductService(productRepo, categoryRepo, redisCache, kafkaProducer, config.Kafka.Brokers)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, redisCache)
	orderService := services.NewOrderService(orderRepo, kafkaProducer, config.Kafka.Brokers)
	addressService := services.NewAddressService(addressRepo)

	var cartSlot cart.Slot
	if redisCache != nil {
		cartSlot = redisCache
	}
	cartService := services.NewCartService(productRepo, cartSlot)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	addressHandler := handlers.NewAddressHandler(addressService)
	cartHandler := handlers.NewCartHandler(cartService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-jewelry-backend",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	authHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api, authMiddleware)
	categoryHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)
	addressHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api)

	// Reviews and banners live in MongoDB; skip them when it is absent
	if db.MongoDB != nil {
		reviewRepo := repositories.NewReviewRepository(db.MongoDB)
		bannerRepo := repositories.NewBannerRepository(db.MongoDB)

		reviewService := services.NewReviewService(reviewRepo, userRepo)
		bannerService := services.NewBannerService(bannerRepo, redisCache)

		handlers.NewReviewHandler(reviewService).RegisterRoutes(api, authMiddleware)
		handlers.NewBannerHandler(bannerService).RegisterRoutes(api, authMiddleware)
	}

	log.Printf("Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	)
}
