package services

import (
	"sort"
	"strings"
	"time"

	"canteen/internal/models"
	"canteen/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return gorm.ErrRecordNotFound the way
// the real repositories do, so services are exercised against the same
// contract without a database.

type fakeMenuRepo struct {
	items  map[uint]models.MenuItem
	nextID uint
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uint]models.MenuItem), nextID: 1}
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *fakeMenuRepo) GetByIDs(ids []uint) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeMenuRepo) List(filter repository.MenuFilter) ([]models.MenuItem, error) {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var matched []models.MenuItem
	for _, id := range ids {
		item := r.items[id]
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(item.Name, filter.Search) && !strings.Contains(item.Description, filter.Search) {
			continue
		}
		matched = append(matched, item)
	}

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *fakeMenuRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			item.Name = value.(string)
		case "description":
			item.Description = value.(string)
		case "price":
			item.Price = value.(float64)
		case "category":
			item.Category = value.(string)
		case "image_url":
			item.ImageURL = value.(string)
		case "available":
			item.Available = value.(bool)
		case "updated_at":
			t := value.(time.Time)
			item.UpdatedAt = &t
		}
	}
	r.items[id] = item
	return nil
}

func (r *fakeMenuRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeCartRepo struct {
	items  map[uint]models.CartItem
	nextID uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[uint]models.CartItem), nextID: 1}
}

func (r *fakeCartRepo) Create(item *models.CartItem) error {
	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *fakeCartRepo) GetByID(id uint) (*models.CartItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *fakeCartRepo) GetByUserAndMenuItem(userID, menuItemID uint) (*models.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.MenuItemID == menuItemID {
			found := item
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepo) GetByUserID(userID uint) ([]models.CartItem, error) {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.CartItem
	for _, id := range ids {
		if r.items[id].UserID == userID {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *fakeCartRepo) UpdateQuantity(id uint, quantity int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

func (r *fakeCartRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

// fakeOrderStore backs both the order and order-item repositories so a
// transaction writes into one place, as it does in postgres.
type fakeOrderStore struct {
	orders     map[uint]models.Order
	orderItems []models.OrderItem
	nextOrder  uint
	nextItem   uint
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint]models.Order), nextOrder: 1, nextItem: 1}
}

func (r *fakeOrderStore) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	order.ID = r.nextOrder
	r.nextOrder++
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders[order.ID] = *order

	for i := range items {
		items[i].ID = r.nextItem
		r.nextItem++
		items[i].OrderID = order.ID
		items[i].CreatedAt = now
		r.orderItems = append(r.orderItems, items[i])
	}
	return nil
}

func (r *fakeOrderStore) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &order, nil
}

func (r *fakeOrderStore) GetByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for id := uint(1); id < r.nextOrder; id++ {
		if order, ok := r.orders[id]; ok && order.UserID == userID {
			out = append(out, order)
		}
	}
	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *fakeOrderStore) List(filter repository.OrderFilter) ([]models.Order, error) {
	var out []models.Order
	for id := r.nextOrder - 1; id >= 1; id-- {
		order, ok := r.orders[id]
		if !ok {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		out = append(out, order)
	}
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeOrderStore) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

func (r *fakeOrderStore) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var out []models.OrderItem
	for _, item := range r.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeOrderStore) GetByOrderIDs(orderIDs []uint) ([]models.OrderItem, error) {
	wanted := make(map[uint]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var out []models.OrderItem
	for _, item := range r.orderItems {
		if wanted[item.OrderID] {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByIDs(ids []uint) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
