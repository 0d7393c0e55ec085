package models

import "time"

// OrderItem is immutable once written. Price is a copy of the menu item
// price at order time; it must never be re-read from the catalog.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"orderId" gorm:"not null;index"`
	MenuItemID uint      `json:"menuItemId" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
