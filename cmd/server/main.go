package main

import (
	"log"
	"net/http"

	"canteen/internal/config"
	"canteen/internal/database"
	"canteen/internal/handlers"
	"canteen/internal/middleware"
	"canteen/internal/redis"
	"canteen/internal/repository"
	"canteen/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis (session store shared with the identity provider)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	menuService := services.NewMenuService(menuRepo)
	cartService := services.NewCartService(cartRepo, menuRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, menuRepo, userRepo)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()
	authenticated := middleware.Authentication(redisClient)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Menu browsing is public; mutation requires a session.
	router.GET("/menu", menuHandler.GetMenu)
	router.POST("/menu", authenticated, menuHandler.CreateMenuItem)
	router.PUT("/menu/:id", authenticated, menuHandler.UpdateMenuItem)
	router.DELETE("/menu/:id", authenticated, menuHandler.DeleteMenuItem)

	router.GET("/cart", authenticated, cartHandler.GetCart)
	router.POST("/cart", authenticated, cartHandler.AddToCart)
	router.PUT("/cart/:id", authenticated, cartHandler.UpdateCartItem)
	router.DELETE("/cart/:id", authenticated, cartHandler.RemoveCartItem)

	router.GET("/orders", authenticated, orderHandler.GetUserOrders)
	router.POST("/orders", authenticated, orderHandler.PlaceOrder)
	router.PUT("/orders/:id", authenticated, orderHandler.UpdateOrderStatus)
	router.GET("/orders/all", authenticated, orderHandler.GetAllOrders)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
