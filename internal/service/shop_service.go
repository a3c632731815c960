package service

import (
	"context"

	"fsanano/shop-api/internal/model"

	"github.com/shopspring/decimal"
)

// Store is the persistence the services need. *repository.ShopRepository
// implements it.
type Store interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error

	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int) (*model.Customer, error)
	GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, c *model.Customer) error
	UpdateCustomerWallet(ctx context.Context, id int, wallet decimal.Decimal) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error)
	GetItem(ctx context.Context, id int) (*model.Item, error)
	CreateItem(ctx context.Context, it *model.Item) error
	UpdateItem(ctx context.Context, id int, p model.ItemPatch) (*model.Item, error)
	DeleteItem(ctx context.Context, id int) error

	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error)
	CreateOrder(ctx context.Context, o *model.Order) error
	DeleteOrder(ctx context.Context, id int) error

	ListOrderItems(ctx context.Context) ([]model.OrderItem, error)
	ListOrderItemsByOrders(ctx context.Context, orderIDs []int) ([]model.OrderItem, error)
	ListOrderItemsByItems(ctx context.Context, itemIDs []int) ([]model.OrderItem, error)
	GetOrderItem(ctx context.Context, id int) (*model.OrderItem, error)
	CreateOrderItem(ctx context.Context, oi *model.OrderItem) error
	UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) error
	DeleteOrderItem(ctx context.Context, id int) error
}

// ShopService runs the catalogue, order and customer use cases. Every method
// is a single store operation plus whatever reads are needed to render the
// result.
type ShopService struct {
	repo Store
}

func NewShopService(repo Store) *ShopService {
	return &ShopService{repo: repo}
}

// customerView loads c's orders and their lines.
func customerView(ctx context.Context, repo Store, c *model.Customer) (model.CustomerView, error) {
	orders, err := repo.ListOrdersByCustomer(ctx, c.ID)
	if err != nil {
		return model.CustomerView{}, err
	}

	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	lines, err := repo.ListOrderItemsByOrders(ctx, ids)
	if err != nil {
		return model.CustomerView{}, err
	}

	return model.NewCustomerView(*c, orders, lines), nil
}
