package services

import (
	"errors"
	"time"

	"canteen/internal/apperrors"
	"canteen/internal/models"
	"canteen/internal/repository"

	"gorm.io/gorm"
)

type AddToCartRequest struct {
	UserID     uint `json:"userId"`
	MenuItemID uint `json:"menuItemId"`
	Quantity   *int `json:"quantity"`
}

// CartItemView is a cart row joined with the current menu item details.
// The price here is the live catalog price, not the snapshot an order
// will take later.
type CartItemView struct {
	ID         uint         `json:"id"`
	UserID     uint         `json:"userId"`
	MenuItemID uint         `json:"menuItemId"`
	Quantity   int          `json:"quantity"`
	CreatedAt  time.Time    `json:"createdAt"`
	MenuItem   CartMenuItem `json:"menuItem"`
}

type CartMenuItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
}

type CartService interface {
	AddToCart(req AddToCartRequest) (*models.CartItem, error)
	UpdateQuantity(cartItemID uint, quantity *int) (*models.CartItem, error)
	RemoveFromCart(cartItemID uint) error
	ListCart(userID uint) ([]CartItemView, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
}

func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository) CartService {
	return &cartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

// AddToCart merges into the existing (user, menu item) row when one
// exists, otherwise inserts a new row.
func (s *cartService) AddToCart(req AddToCartRequest) (*models.CartItem, error) {
	if req.UserID == 0 {
		return nil, apperrors.Invalid("MISSING_USER_ID", "userId is required")
	}
	if req.MenuItemID == 0 {
		return nil, apperrors.Invalid("MISSING_MENU_ITEM_ID", "menuItemId is required")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return nil, apperrors.Invalid("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	existing, err := s.cartRepo.GetByUserAndMenuItem(req.UserID, req.MenuItemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.cartRepo.UpdateQuantity(existing.ID, newQuantity); err != nil {
			return nil, apperrors.Internal(err)
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	item := &models.CartItem{
		UserID:     req.UserID,
		MenuItemID: req.MenuItemID,
		Quantity:   quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, apperrors.Internal(err)
	}
	return item, nil
}

func (s *cartService) UpdateQuantity(cartItemID uint, quantity *int) (*models.CartItem, error) {
	if quantity == nil {
		return nil, apperrors.Invalid("MISSING_REQUIRED_FIELD", "Quantity is required")
	}
	// Zero never deletes; removal is a separate operation.
	if *quantity <= 0 {
		return nil, apperrors.Invalid("INVALID_QUANTITY",
			"Quantity must be a positive integer greater than 0")
	}

	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("CART_ITEM_NOT_FOUND", "Cart item not found")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.cartRepo.UpdateQuantity(cartItemID, *quantity); err != nil {
		return nil, apperrors.Internal(err)
	}
	item.Quantity = *quantity
	return item, nil
}

func (s *cartService) RemoveFromCart(cartItemID uint) error {
	if _, err := s.cartRepo.GetByID(cartItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("CART_ITEM_NOT_FOUND", "Cart item not found")
		}
		return apperrors.Internal(err)
	}

	if err := s.cartRepo.Delete(cartItemID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ListCart returns the user's cart rows with current menu item details.
// Rows whose menu item was removed from the catalog are dropped.
func (s *cartService) ListCart(userID uint) ([]CartItemView, error) {
	items, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	views := []CartItemView{}
	if len(items) == 0 {
		return views, nil
	}

	menuItemIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool)
	for _, item := range items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			menuItemIDs = append(menuItemIDs, item.MenuItemID)
		}
	}

	menuItems, err := s.menuRepo.GetByIDs(menuItemIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	menuByID := make(map[uint]models.MenuItem, len(menuItems))
	for _, m := range menuItems {
		menuByID[m.ID] = m
	}

	for _, item := range items {
		m, ok := menuByID[item.MenuItemID]
		if !ok {
			continue
		}
		views = append(views, CartItemView{
			ID:         item.ID,
			UserID:     item.UserID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			CreatedAt:  item.CreatedAt,
			MenuItem: CartMenuItem{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				Price:       m.Price,
				Category:    m.Category,
				ImageURL:    m.ImageURL,
				Available:   m.Available,
			},
		})
	}
	return views, nil
}
