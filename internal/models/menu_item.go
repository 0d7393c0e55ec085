package models

import "time"

type MenuItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Price       float64    `json:"price" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null;index"` // snacks, meals, beverages, desserts
	ImageURL    string     `json:"imageUrl" gorm:"column:image_url"`
	Available   bool       `json:"available" gorm:"default:true"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

type MenuCategory string

const (
	CategorySnacks    MenuCategory = "snacks"
	CategoryMeals     MenuCategory = "meals"
	CategoryBeverages MenuCategory = "beverages"
	CategoryDesserts  MenuCategory = "desserts"
)

// ValidCategory reports whether s is one of the four fixed menu categories.
func ValidCategory(s string) bool {
	switch MenuCategory(s) {
	case CategorySnacks, CategoryMeals, CategoryBeverages, CategoryDesserts:
		return true
	}
	return false
}
