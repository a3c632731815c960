package service

import (
	"context"

	"fsanano/shop-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

// RunAtomic runs fn inline; transactions are the repository's concern.
func (m *mockStore) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockStore) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *mockStore) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *mockStore) GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	args := m.Called(ctx, username)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *mockStore) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockStore) UpdateCustomerWallet(ctx context.Context, id int, wallet decimal.Decimal) (*model.Customer, error) {
	args := m.Called(ctx, id, wallet)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *mockStore) DeleteCustomer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListItems(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *mockStore) ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *mockStore) GetItem(ctx context.Context, id int) (*model.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*model.Item)
	return it, args.Error(1)
}

func (m *mockStore) CreateItem(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockStore) UpdateItem(ctx context.Context, id int, p model.ItemPatch) (*model.Item, error) {
	args := m.Called(ctx, id, p)
	it, _ := args.Get(0).(*model.Item)
	return it, args.Error(1)
}

func (m *mockStore) DeleteItem(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *mockStore) ListOrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *mockStore) CreateOrder(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockStore) DeleteOrder(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListOrderItems(ctx context.Context) ([]model.OrderItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *mockStore) ListOrderItemsByOrders(ctx context.Context, orderIDs []int) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *mockStore) ListOrderItemsByItems(ctx context.Context, itemIDs []int) ([]model.OrderItem, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *mockStore) GetOrderItem(ctx context.Context, id int) (*model.OrderItem, error) {
	args := m.Called(ctx, id)
	oi, _ := args.Get(0).(*model.OrderItem)
	return oi, args.Error(1)
}

func (m *mockStore) CreateOrderItem(ctx context.Context, oi *model.OrderItem) error {
	return m.Called(ctx, oi).Error(0)
}

func (m *mockStore) UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *mockStore) DeleteOrderItem(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
