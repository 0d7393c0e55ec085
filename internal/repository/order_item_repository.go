package repository

import (
	"canteen/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	GetByOrderIDs(orderIDs []uint) ([]models.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) GetByOrderIDs(orderIDs []uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id IN ?", orderIDs).Find(&items).Error
	return items, err
}
