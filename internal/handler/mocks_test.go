package handler_test

import (
	"context"

	"fsanano/shop-api/internal/model"
	"fsanano/shop-api/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockShopService struct {
	mock.Mock
}

func (m *mockShopService) ListItems(ctx context.Context) ([]model.ItemSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.ItemSummary), args.Error(1)
}

func (m *mockShopService) ListItemsByCategory(ctx context.Context, category string) ([]model.ItemDetail, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.ItemDetail), args.Error(1)
}

func (m *mockShopService) GetItem(ctx context.Context, id int) (model.ItemSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ItemSummary), args.Error(1)
}

func (m *mockShopService) CreateItem(ctx context.Context, it model.Item) (model.ItemDetail, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(model.ItemDetail), args.Error(1)
}

func (m *mockShopService) UpdateItem(ctx context.Context, id int, p model.ItemPatch) (model.ItemDetail, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(model.ItemDetail), args.Error(1)
}

func (m *mockShopService) DeleteItem(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockShopService) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.OrderView), args.Error(1)
}

func (m *mockShopService) CreateOrder(ctx context.Context, o model.Order) (model.OrderView, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(model.OrderView), args.Error(1)
}

func (m *mockShopService) DeleteOrder(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockShopService) ListOrderItems(ctx context.Context) ([]model.OrderItemView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.OrderItemView), args.Error(1)
}

func (m *mockShopService) GetOrderItem(ctx context.Context, id int) (model.OrderItemView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.OrderItemView), args.Error(1)
}

func (m *mockShopService) CreateOrderItem(ctx context.Context, oi model.OrderItem) (model.OrderItemView, error) {
	args := m.Called(ctx, oi)
	return args.Get(0).(model.OrderItemView), args.Error(1)
}

func (m *mockShopService) UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) (model.OrderItemView, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(model.OrderItemView), args.Error(1)
}

func (m *mockShopService) DeleteOrderItem(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockShopService) ListCustomers(ctx context.Context) ([]model.CustomerView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.CustomerView), args.Error(1)
}

func (m *mockShopService) GetCustomer(ctx context.Context, id int) (model.CustomerView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CustomerView), args.Error(1)
}

func (m *mockShopService) UpdateCustomer(ctx context.Context, id int, p model.CustomerPatch) (model.CustomerView, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(model.CustomerView), args.Error(1)
}

func (m *mockShopService) DeleteCustomer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, in service.SignupInput) (*service.Session, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.Session, error) {
	args := m.Called(ctx, username, password)
	s, _ := args.Get(0).(*service.Session)
	return s, args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.Customer, error) {
	args := m.Called(ctx, token)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *mockAuthService) CustomerView(ctx context.Context, c *model.Customer) (model.CustomerView, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.CustomerView), args.Error(1)
}
