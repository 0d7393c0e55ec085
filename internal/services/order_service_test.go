package services

import (
	"testing"

	"canteen/internal/apperrors"
	"canteen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (OrderService, *fakeMenuRepo, *fakeOrderStore, *fakeUserRepo) {
	menuRepo := newFakeMenuRepo()
	store := newFakeOrderStore()
	userRepo := newFakeUserRepo()
	svc := NewOrderService(store, store, menuRepo, userRepo)
	return svc, menuRepo, store, userRepo
}

func seedMenu(t *testing.T, menuRepo *fakeMenuRepo, name string, price float64) uint {
	t.Helper()
	item := &models.MenuItem{Name: name, Price: price, Category: "meals", Available: true}
	require.NoError(t, menuRepo.Create(item))
	return item.ID
}

func TestPlaceOrderComputesTotalFromSnapshots(t *testing.T) {
	svc, menuRepo, _, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)
	jamunID := seedMenu(t, menuRepo, "Gulab Jamun", 25)

	order, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID:         1,
		PickupLocation: "Main Canteen",
		Items: []PlaceOrderItemInput{
			{MenuItemID: dosaID, Quantity: 2},
			{MenuItemID: jamunID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 145.0, order.TotalAmount)
	assert.Equal(t, string(models.OrderPending), order.Status)
	assert.Equal(t, "Main Canteen", order.PickupLocation)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 60.0, order.Items[0].Price)
	assert.Equal(t, 25.0, order.Items[1].Price)
	require.NotNil(t, order.Items[0].MenuItem)
	assert.Equal(t, "Masala Dosa", order.Items[0].MenuItem.Name)
}

func TestPlaceOrderSnapshotSurvivesPriceChange(t *testing.T) {
	svc, menuRepo, store, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	order, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID:         1,
		PickupLocation: "Library Cafe",
		Items:          []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Menu price goes up after checkout.
	require.NoError(t, menuRepo.UpdateFields(dosaID, map[string]interface{}{"price": 90.0}))

	items, err := store.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 60.0, items[0].Price)

	listed, err := svc.ListOrdersForUser(1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 60.0, listed[0].TotalAmount)
	assert.Equal(t, 60.0, listed[0].Items[0].Price)
	// Display detail shows the live catalog price, distinct from the
	// charged snapshot.
	assert.Equal(t, 90.0, listed[0].Items[0].MenuItem.Price)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, menuRepo, store, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	tests := []struct {
		name string
		req  PlaceOrderRequest
		code string
	}{
		{
			name: "missing user",
			req:  PlaceOrderRequest{PickupLocation: "Main Canteen", Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}}},
			code: "INVALID_USER_ID",
		},
		{
			name: "missing pickup location",
			req:  PlaceOrderRequest{UserID: 1, Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}}},
			code: "MISSING_PICKUP_LOCATION",
		},
		{
			name: "unknown pickup location",
			req:  PlaceOrderRequest{UserID: 1, PickupLocation: "Food Court", Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}}},
			code: "INVALID_PICKUP_LOCATION",
		},
		{
			name: "empty items",
			req:  PlaceOrderRequest{UserID: 1, PickupLocation: "Main Canteen"},
			code: "EMPTY_CART",
		},
		{
			name: "zero quantity",
			req:  PlaceOrderRequest{UserID: 1, PickupLocation: "Main Canteen", Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 0}}},
			code: "INVALID_QUANTITY",
		},
		{
			name: "missing menu item id",
			req:  PlaceOrderRequest{UserID: 1, PickupLocation: "Main Canteen", Items: []PlaceOrderItemInput{{Quantity: 1}}},
			code: "INVALID_MENU_ITEM_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
		})
	}

	// Validation failures never reach the store.
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
}

func TestPlaceOrderUnknownMenuItemRejectsWholeOrder(t *testing.T) {
	svc, menuRepo, store, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	_, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID:         1,
		PickupLocation: "Hostel Canteen",
		Items: []PlaceOrderItemInput{
			{MenuItemID: dosaID, Quantity: 1},
			{MenuItemID: 999, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "MENU_ITEMS_NOT_FOUND", apperrors.CodeOf(err))
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// Neither order nor order items were written.
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, menuRepo, _, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	placed, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID:         1,
		PickupLocation: "Main Canteen",
		Items:          []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(placed.ID, "ready")
	require.NoError(t, err)
	assert.Equal(t, "ready", updated.Status)
	assert.False(t, updated.UpdatedAt.Before(placed.UpdatedAt))

	// Idempotent re-set of the same value.
	again, err := svc.UpdateOrderStatus(placed.ID, "ready")
	require.NoError(t, err)
	assert.Equal(t, "ready", again.Status)

	// Transitions are unguarded; skipping stages is allowed.
	completed, err := svc.UpdateOrderStatus(placed.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

func TestUpdateOrderStatusErrors(t *testing.T) {
	svc, _, _, _ := newOrderServiceForTest()

	_, err := svc.UpdateOrderStatus(1, "")
	assert.Equal(t, "MISSING_STATUS", apperrors.CodeOf(err))

	_, err = svc.UpdateOrderStatus(1, "shipped")
	assert.Equal(t, "INVALID_STATUS", apperrors.CodeOf(err))

	_, err = svc.UpdateOrderStatus(42, "ready")
	assert.Equal(t, "ORDER_NOT_FOUND", apperrors.CodeOf(err))
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListOrdersForUserNewestFirst(t *testing.T) {
	svc, menuRepo, _, _ := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	first, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID: 7, PickupLocation: "Main Canteen",
		Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID: 7, PickupLocation: "Library Cafe",
		Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 3}},
	})
	require.NoError(t, err)

	orders, err := svc.ListOrdersForUser(7)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	// No orders yields an empty slice, not nil.
	none, err := svc.ListOrdersForUser(99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListAllOrders(t *testing.T) {
	svc, menuRepo, _, userRepo := newOrderServiceForTest()
	dosaID := seedMenu(t, menuRepo, "Masala Dosa", 60)

	user := &models.User{Name: "Raj Kumar", Email: "student@mec.edu", Role: "student"}
	require.NoError(t, userRepo.Create(user))

	placed, err := svc.PlaceOrder(PlaceOrderRequest{
		UserID: user.ID, PickupLocation: "Main Canteen",
		Items: []PlaceOrderItemInput{{MenuItemID: dosaID, Quantity: 2}},
	})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(placed.ID, "preparing")
	require.NoError(t, err)

	all, err := svc.ListAllOrders(AdminOrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "Raj Kumar", all[0].User.Name)
	assert.Equal(t, "student@mec.edu", all[0].User.Email)
	require.Len(t, all[0].Items, 1)
	assert.Equal(t, dosaID, all[0].Items[0].MenuItemID)

	filtered, err := svc.ListAllOrders(AdminOrderFilter{Status: "preparing"})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	empty, err := svc.ListAllOrders(AdminOrderFilter{Status: "cancelled"})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ListAllOrders(AdminOrderFilter{Status: "bogus"})
	assert.Equal(t, "INVALID_STATUS", apperrors.CodeOf(err))
}
