package service

import (
	"context"
	"fmt"

	"fsanano/shop-api/internal/model"

	"golang.org/x/sync/errgroup"
)

// ListOrders loads orders and order lines side by side and stitches them.
func (s *ShopService) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	g, ctx := errgroup.WithContext(ctx)
	var orders []model.Order
	var lines []model.OrderItem

	g.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		lines, err = s.repo.ListOrderItems(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return model.NewOrderViews(orders, lines), nil
}

func (s *ShopService) CreateOrder(ctx context.Context, o model.Order) (model.OrderView, error) {
	if o.CustomerID <= 0 {
		return model.OrderView{}, fmt.Errorf("%w: customer_id", model.ErrInvalidInput)
	}
	if err := s.repo.CreateOrder(ctx, &o); err != nil {
		return model.OrderView{}, err
	}
	return model.NewOrderView(o, nil), nil
}

func (s *ShopService) DeleteOrder(ctx context.Context, id int) error {
	return s.repo.DeleteOrder(ctx, id)
}
