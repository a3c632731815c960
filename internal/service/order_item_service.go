package service

import (
	"context"

	"fsanano/shop-api/internal/model"
)

func (s *ShopService) ListOrderItems(ctx context.Context) ([]model.OrderItemView, error) {
	lines, err := s.repo.ListOrderItems(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewOrderItemViews(lines), nil
}

func (s *ShopService) GetOrderItem(ctx context.Context, id int) (model.OrderItemView, error) {
	oi, err := s.repo.GetOrderItem(ctx, id)
	if err != nil {
		return model.OrderItemView{}, err
	}
	return model.NewOrderItemView(*oi), nil
}

// CreateOrderItem inserts oi and reads it back with its item.
func (s *ShopService) CreateOrderItem(ctx context.Context, oi model.OrderItem) (model.OrderItemView, error) {
	var view model.OrderItemView
	err := s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateOrderItem(ctx, &oi); err != nil {
			return err
		}
		created, err := s.repo.GetOrderItem(ctx, oi.ID)
		if err != nil {
			return err
		}
		view = model.NewOrderItemView(*created)
		return nil
	})
	return view, err
}

func (s *ShopService) UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) (model.OrderItemView, error) {
	var view model.OrderItemView
	err := s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateOrderItem(ctx, id, p); err != nil {
			return err
		}
		updated, err := s.repo.GetOrderItem(ctx, id)
		if err != nil {
			return err
		}
		view = model.NewOrderItemView(*updated)
		return nil
	})
	return view, err
}

func (s *ShopService) DeleteOrderItem(ctx context.Context, id int) error {
	return s.repo.DeleteOrderItem(ctx, id)
}
