package service

import (
	"context"

	"fsanano/shop-api/internal/model"
)

func (s *ShopService) ListItems(ctx context.Context) ([]model.ItemSummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewItemSummaries(items), nil
}

func (s *ShopService) ListItemsByCategory(ctx context.Context, category string) ([]model.ItemDetail, error) {
	items, err := s.repo.ListItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	lines, err := s.repo.ListOrderItemsByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return model.NewItemDetails(items, lines), nil
}

func (s *ShopService) GetItem(ctx context.Context, id int) (model.ItemSummary, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return model.ItemSummary{}, err
	}
	return model.NewItemSummary(*it), nil
}

func (s *ShopService) CreateItem(ctx context.Context, it model.Item) (model.ItemDetail, error) {
	if err := s.repo.CreateItem(ctx, &it); err != nil {
		return model.ItemDetail{}, err
	}
	return model.NewItemDetail(it, nil), nil
}

// UpdateItem applies p and returns the item with its order lines, read in the
// same transaction as the update.
func (s *ShopService) UpdateItem(ctx context.Context, id int, p model.ItemPatch) (model.ItemDetail, error) {
	var detail model.ItemDetail
	err := s.repo.RunAtomic(ctx, func(ctx context.Context) error {
		it, err := s.repo.UpdateItem(ctx, id, p)
		if err != nil {
			return err
		}
		lines, err := s.repo.ListOrderItemsByItems(ctx, []int{it.ID})
		if err != nil {
			return err
		}
		detail = model.NewItemDetail(*it, lines)
		return nil
	})
	return detail, err
}

func (s *ShopService) DeleteItem(ctx context.Context, id int) error {
	return s.repo.DeleteItem(ctx, id)
}
