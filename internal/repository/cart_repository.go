package repository

import (
	"canteen/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(item *models.CartItem) error
	GetByID(id uint) (*models.CartItem, error)
	GetByUserAndMenuItem(userID, menuItemID uint) (*models.CartItem, error)
	GetByUserID(userID uint) ([]models.CartItem, error)
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetByUserAndMenuItem(userID, menuItemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetByUserID(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *cartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

func (r *cartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}
