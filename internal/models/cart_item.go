package models

import "time"

// CartItem is one (user, menu item) row in a pre-checkout cart.
// Re-adding the same menu item merges into the existing row; a row with
// quantity zero never exists.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	MenuItemID uint      `json:"menuItemId" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"createdAt"`
}
