package service

import (
	"context"
	"fmt"

	"fsanano/shop-api/internal/model"

	"golang.org/x/sync/errgroup"
)

func (s *ShopService) ListCustomers(ctx context.Context) ([]model.CustomerView, error) {
	g, ctx := errgroup.WithContext(ctx)
	var customers []model.Customer
	var orders []model.Order
	var lines []model.OrderItem

	g.Go(func() error {
		var err error
		customers, err = s.repo.ListCustomers(ctx)
		return err
	})

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

	return model.NewCustomerViews(customers, orders, lines), nil
}

func (s *ShopService) GetCustomer(ctx context.Context, id int) (model.CustomerView, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return model.CustomerView{}, err
	}
	return customerView(ctx, s.repo, c)
}

// UpdateCustomer only ever writes the wallet. A patch without one is rejected
// once the customer is known to exist.
func (s *ShopService) UpdateCustomer(ctx context.Context, id int, p model.CustomerPatch) (model.CustomerView, error) {
	var view model.CustomerView
	err := s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetCustomer(ctx, id); err != nil {
			return err
		}
		if p.Wallet == nil {
			return fmt.Errorf("%w: wallet is required", model.ErrInvalidInput)
		}

		c, err := s.repo.UpdateCustomerWallet(ctx, id, *p.Wallet)
		if err != nil {
			return err
		}
		view, err = customerView(ctx, s.repo, c)
		return err
	})
	return view, err
}

func (s *ShopService) DeleteCustomer(ctx context.Context, id int) error {
	return s.repo.DeleteCustomer(ctx, id)
}
