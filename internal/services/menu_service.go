package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen/internal/apperrors"
	"canteen/internal/models"
	"canteen/internal/repository"

	"gorm.io/gorm"
)

const maxPageSize = 100

// Define request structs
type CreateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Available   *bool    `json:"available"`
}

type UpdateMenuItemRequest struct {
	// ID and CreatedAt are bound only to reject attempts to set them.
	ID          *uint    `json:"id"`
	CreatedAt   *string  `json:"createdAt"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Available   *bool    `json:"available"`
}

type MenuService interface {
	GetMenuItem(id uint) (*models.MenuItem, error)
	ListMenuItems(category, search string, limit, offset int) ([]models.MenuItem, error)
	CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateMenuItem(id uint, req UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(id uint) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOT_FOUND", "Menu item not found")
		}
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *menuService) ListMenuItems(category, search string, limit, offset int) ([]models.MenuItem, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, apperrors.Invalid("INVALID_CATEGORY",
			"Invalid category. Must be one of: snacks, meals, beverages, desserts")
	}

	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.menuRepo.List(repository.MenuFilter{
		Category: category,
		Search:   search,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (s *menuService) CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Invalid("MISSING_NAME", "Name is required")
	}
	if req.Price == nil {
		return nil, apperrors.Invalid("MISSING_PRICE", "Price is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, apperrors.Invalid("MISSING_CATEGORY", "Category is required")
	}
	if *req.Price <= 0 {
		return nil, apperrors.Invalid("INVALID_PRICE", "Price must be a positive number")
	}
	category := strings.TrimSpace(req.Category)
	if !models.ValidCategory(category) {
		return nil, apperrors.Invalid("INVALID_CATEGORY",
			"Category must be one of: snacks, meals, beverages, desserts")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &models.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Category:    category,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Available:   available,
	}

	if err := s.menuRepo.Create(item); err != nil {
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(id uint, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	if req.ID != nil || req.CreatedAt != nil {
		return nil, apperrors.Invalid("INVALID_FIELDS", "Cannot update id or createdAt fields")
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, apperrors.Invalid("INVALID_PRICE", "Price must be a positive number")
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return nil, apperrors.Invalid("INVALID_CATEGORY",
			"Category must be one of: snacks, meals, beverages, desserts")
	}

	if _, err := s.menuRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOT_FOUND", "Menu item not found")
		}
		return nil, apperrors.Internal(err)
	}

	// Only supplied fields change; updatedAt always refreshes.
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageURL != nil {
		fields["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}

	if err := s.menuRepo.UpdateFields(id, fields); err != nil {
		return nil, apperrors.Internal(err)
	}

	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to reload menu item %d: %w", id, err))
	}
	return item, nil
}

func (s *menuService) DeleteMenuItem(id uint) error {
	if _, err := s.menuRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("NOT_FOUND", "Menu item not found")
		}
		return apperrors.Internal(err)
	}

	// Hard delete. Orders keep their own price snapshots, so catalog
	// removal does not touch historical data.
	if err := s.menuRepo.Delete(id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
