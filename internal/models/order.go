package models

import "time"

// Order is created once at checkout and never deleted. Only Status and
// UpdatedAt change after creation; TotalAmount is fixed to the sum of the
// item price snapshots taken at order time.
type Order struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"not null;index"`
	TotalAmount    float64   `json:"totalAmount" gorm:"not null"`
	Status         string    `json:"status" gorm:"not null;default:'pending';index"` // pending, preparing, ready, completed, cancelled
	PickupLocation string    `json:"pickupLocation" gorm:"not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five lifecycle values.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// PickupLocations are the three physical collection points.
var PickupLocations = []string{"Main Canteen", "Library Cafe", "Hostel Canteen"}

// ValidPickupLocation reports whether s names a known collection point.
func ValidPickupLocation(s string) bool {
	for _, loc := range PickupLocations {
		if s == loc {
			return true
		}
	}
	return false
}
