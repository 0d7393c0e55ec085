package repository

import (
	"canteen/internal/models"

	"gorm.io/gorm"
)

// MenuFilter narrows a menu listing. Category and Search are AND-combined;
// Search matches name or description as a case-sensitive substring.
type MenuFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetByIDs(ids []uint) ([]models.MenuItem, error)
	List(filter MenuFilter) ([]models.MenuItem, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByIDs(ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *menuRepository) List(filter MenuFilter) ([]models.MenuItem, error) {
	query := r.db.Model(&models.MenuItem{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var items []models.MenuItem
	err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&items).Error
	return items, err
}

func (r *menuRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *menuRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
