package services

import (
	"errors"
	"strings"
	"time"

	"canteen/internal/apperrors"
	"canteen/internal/models"
	"canteen/internal/repository"

	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	UserID         uint                  `json:"userId"`
	PickupLocation string                `json:"pickupLocation"`
	Items          []PlaceOrderItemInput `json:"items"`
}

type PlaceOrderItemInput struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

// AdminOrderFilter narrows the admin listing.
type AdminOrderFilter struct {
	Status string
	Limit  int
	Offset int
}

// OrderMenuItem is the menu detail attached to an order item for
// display. Name, price and image come from the catalog row; the
// authoritative charged price stays on the order item itself.
type OrderMenuItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type OrderItemView struct {
	ID         uint           `json:"id"`
	MenuItemID uint           `json:"menuItemId"`
	Quantity   int            `json:"quantity"`
	Price      float64        `json:"price"`
	MenuItem   *OrderMenuItem `json:"menuItem"`
}

type OrderView struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	TotalAmount    float64         `json:"totalAmount"`
	Status         string          `json:"status"`
	PickupLocation string          `json:"pickupLocation"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Items          []OrderItemView `json:"items"`
}

type OrderUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminOrderView struct {
	OrderView
	User *OrderUser `json:"user"`
}

type OrderService interface {
	PlaceOrder(req PlaceOrderRequest) (*OrderView, error)
	UpdateOrderStatus(orderID uint, status string) (*models.Order, error)
	ListOrdersForUser(userID uint) ([]OrderView, error)
	ListAllOrders(filter AdminOrderFilter) ([]AdminOrderView, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	menuRepo      repository.MenuRepository
	userRepo      repository.UserRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	menuRepo repository.MenuRepository,
	userRepo repository.UserRepository,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		menuRepo:      menuRepo,
		userRepo:      userRepo,
	}
}

// PlaceOrder validates the checkout request, snapshots current catalog
// prices into order items, and writes the order and its items as one
// transaction. Cart clearing is the caller's responsibility.
func (s *orderService) PlaceOrder(req PlaceOrderRequest) (*OrderView, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, err
	}

	// Batch-resolve every referenced menu item; a partial match rejects
	// the whole order.
	distinctIDs := make([]uint, 0, len(req.Items))
	seen := make(map[uint]bool)
	for _, item := range req.Items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			distinctIDs = append(distinctIDs, item.MenuItemID)
		}
	}

	menuItems, err := s.menuRepo.GetByIDs(distinctIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if len(menuItems) != len(distinctIDs) {
		return nil, apperrors.NotFound("MENU_ITEMS_NOT_FOUND", "One or more menu items not found")
	}

	menuByID := make(map[uint]models.MenuItem, len(menuItems))
	for _, m := range menuItems {
		menuByID[m.ID] = m
	}

	// Snapshot current prices. Client-submitted prices, if any, never
	// reach this point.
	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		price := menuByID[item.MenuItemID].Price
		totalAmount += price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      price,
		})
	}

	order := &models.Order{
		UserID:         req.UserID,
		TotalAmount:    totalAmount,
		Status:         string(models.OrderPending),
		PickupLocation: strings.TrimSpace(req.PickupLocation),
	}

	if err := s.orderRepo.CreateWithItems(order, orderItems); err != nil {
		return nil, apperrors.Internal(err)
	}

	view := buildOrderView(*order, orderItems, menuByID)
	return &view, nil
}

func validatePlaceOrder(req PlaceOrderRequest) error {
	if req.UserID == 0 {
		return apperrors.Invalid("INVALID_USER_ID", "Valid userId is required")
	}
	location := strings.TrimSpace(req.PickupLocation)
	if location == "" {
		return apperrors.Invalid("MISSING_PICKUP_LOCATION", "pickupLocation is required")
	}
	if !models.ValidPickupLocation(location) {
		return apperrors.Invalid("INVALID_PICKUP_LOCATION",
			"pickupLocation must be one of: Main Canteen, Library Cafe, Hostel Canteen")
	}
	if len(req.Items) == 0 {
		return apperrors.Invalid("EMPTY_CART", "items array is required and must not be empty")
	}
	for _, item := range req.Items {
		if item.MenuItemID == 0 {
			return apperrors.Invalid("INVALID_MENU_ITEM_ID", "Each item must have a valid menuItemId")
		}
		if item.Quantity <= 0 {
			return apperrors.Invalid("INVALID_QUANTITY",
				"Each item must have a valid quantity greater than 0")
		}
	}
	return nil
}

// UpdateOrderStatus sets the status unconditionally; every transition
// within the fixed set is allowed, including re-setting the same value.
func (s *orderService) UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, apperrors.Invalid("MISSING_STATUS", "Status is required")
	}
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.Invalid("INVALID_STATUS",
			"Status must be one of: pending, preparing, ready, completed, cancelled")
	}

	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, apperrors.Internal(err)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return order, nil
}

func (s *orderService) ListOrdersForUser(userID uint) ([]OrderView, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	views := []OrderView{}
	if len(orders) == 0 {
		return views, nil
	}

	itemsByOrder, menuByID, err := s.resolveOrderItems(orders)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		views = append(views, buildOrderView(order, itemsByOrder[order.ID], menuByID))
	}
	return views, nil
}

func (s *orderService) ListAllOrders(filter AdminOrderFilter) ([]AdminOrderView, error) {
	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return nil, apperrors.Invalid("INVALID_STATUS",
			"Status must be one of: pending, preparing, ready, completed, cancelled")
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	orders, err := s.orderRepo.List(repository.OrderFilter{
		Status: filter.Status,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	views := []AdminOrderView{}
	if len(orders) == 0 {
		return views, nil
	}

	itemsByOrder, menuByID, err := s.resolveOrderItems(orders)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(orders))
	seen := make(map[uint]bool)
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}
	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	userByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	for _, order := range orders {
		view := AdminOrderView{
			OrderView: buildOrderView(order, itemsByOrder[order.ID], menuByID),
		}
		if u, ok := userByID[order.UserID]; ok {
			view.User = &OrderUser{ID: u.ID, Name: u.Name, Email: u.Email}
		}
		views = append(views, view)
	}
	return views, nil
}

// resolveOrderItems batch-loads the items for a set of orders and the
// menu rows they reference, keyed for reassembly.
func (s *orderService) resolveOrderItems(orders []models.Order) (map[uint][]models.OrderItem, map[uint]models.MenuItem, error) {
	orderIDs := make([]uint, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	items, err := s.orderItemRepo.GetByOrderIDs(orderIDs)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}

	itemsByOrder := make(map[uint][]models.OrderItem)
	menuItemIDs := make([]uint, 0, len(items))
	seen := make(map[uint]bool)
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			menuItemIDs = append(menuItemIDs, item.MenuItemID)
		}
	}

	menuByID := make(map[uint]models.MenuItem)
	if len(menuItemIDs) > 0 {
		menuItems, err := s.menuRepo.GetByIDs(menuItemIDs)
		if err != nil {
			return nil, nil, apperrors.Internal(err)
		}
		for _, m := range menuItems {
			menuByID[m.ID] = m
		}
	}
	return itemsByOrder, menuByID, nil
}

func buildOrderView(order models.Order, items []models.OrderItem, menuByID map[uint]models.MenuItem) OrderView {
	itemViews := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		view := OrderItemView{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
		// Menu detail is display-only; a hard-deleted catalog row leaves
		// it nil while the snapshotted price above stays intact.
		if m, ok := menuByID[item.MenuItemID]; ok {
			view.MenuItem = &OrderMenuItem{
				ID:       m.ID,
				Name:     m.Name,
				Price:    m.Price,
				ImageURL: m.ImageURL,
			}
		}
		itemViews = append(itemViews, view)
	}

	return OrderView{
		ID:             order.ID,
		UserID:         order.UserID,
		TotalAmount:    order.TotalAmount,
		Status:         order.Status,
		PickupLocation: order.PickupLocation,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Items:          itemViews,
	}
}
