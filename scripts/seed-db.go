package main

import (
	"fmt"
	"log"

	"canteen/internal/config"
	"canteen/internal/database"
	"canteen/internal/models"
	"canteen/internal/repository"
	"canteen/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create demo users
	fmt.Println("Creating demo users...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	student := &models.User{
		Name:  "Raj Kumar",
		Email: "student@mec.edu",
		Role:  string(models.RoleStudent),
	}
	if err := userService.CreateUser(student, "student123"); err != nil {
		log.Printf("Warning: Failed to create student user: %v", err)
	}

	admin := &models.User{
		Name:  "Canteen Manager",
		Email: "admin@mec.edu",
		Role:  string(models.RoleAdmin),
	}
	if err := userService.CreateUser(admin, "admin123"); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	}

	// Seed the starter menu
	fmt.Println("Seeding menu items...")
	menuRepo := repository.NewMenuRepository(db)
	menuItems := []models.MenuItem{
		{Name: "Samosa", Description: "Crispy fried pastry with spiced potato filling", Price: 25.00, Category: string(models.CategorySnacks), Available: true},
		{Name: "Vada Pav", Description: "Spiced potato fritter in a bun", Price: 30.00, Category: string(models.CategorySnacks), Available: true},
		{Name: "Masala Dosa", Description: "Rice crepe with spiced potato filling", Price: 60.00, Category: string(models.CategoryMeals), Available: true},
		{Name: "Veg Thali", Description: "Rice, dal, two sabzis, roti and curd", Price: 120.00, Category: string(models.CategoryMeals), Available: true},
		{Name: "Paneer Biryani", Description: "Fragrant rice with cottage cheese", Price: 140.00, Category: string(models.CategoryMeals), Available: true},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 15.00, Category: string(models.CategoryBeverages), Available: true},
		{Name: "Cold Coffee", Description: "Iced coffee with milk", Price: 50.00, Category: string(models.CategoryBeverages), Available: true},
		{Name: "Fresh Lime Soda", Description: "Sweet and salty lime soda", Price: 35.00, Category: string(models.CategoryBeverages), Available: true},
		{Name: "Gulab Jamun", Description: "Fried milk dumplings in sugar syrup", Price: 25.00, Category: string(models.CategoryDesserts), Available: true},
		{Name: "Ice Cream Cup", Description: "Vanilla ice cream", Price: 40.00, Category: string(models.CategoryDesserts), Available: true},
	}
	for i := range menuItems {
		if err := menuRepo.Create(&menuItems[i]); err != nil {
			log.Printf("Warning: Failed to seed menu item %q: %v", menuItems[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Println("Demo users: student@mec.edu / student123, admin@mec.edu / admin123")
}
