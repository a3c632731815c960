package repository

import (
	"context"
	"fmt"
	"strings"

	"fsanano/shop-api/internal/model"

	"github.com/jackc/pgx/v5"
)

const itemColumns = "id, title, img_url, description, category, price"

func scanItem(row pgx.Row) (*model.Item, error) {
	var it model.Item
	if err := row.Scan(&it.ID, &it.Title, &it.ImgURL, &it.Description, &it.Category, &it.Price); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ShopRepository) queryItems(ctx context.Context, sql string, args ...any) ([]model.Item, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *ShopRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := r.queryItems(ctx, "SELECT "+itemColumns+" FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *ShopRepository) ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error) {
	items, err := r.queryItems(ctx, "SELECT "+itemColumns+" FROM items WHERE category = $1 ORDER BY id", category)
	if err != nil {
		return nil, fmt.Errorf("failed to list items in category %q: %w", category, err)
	}
	return items, nil
}

func (r *ShopRepository) GetItem(ctx context.Context, id int) (*model.Item, error) {
	it, err := scanItem(r.getExecutor(ctx).QueryRow(ctx, "SELECT "+itemColumns+" FROM items WHERE id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, translate(err))
	}
	return it, nil
}

func (r *ShopRepository) CreateItem(ctx context.Context, it *model.Item) error {
	err := r.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO items (title, img_url, description, category, price) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		it.Title, it.ImgURL, it.Description, it.Category, it.Price,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", translate(err))
	}
	return nil
}

// UpdateItem overwrites the columns set in p. An empty patch just reads the
// item back.
func (r *ShopRepository) UpdateItem(ctx context.Context, id int, p model.ItemPatch) (*model.Item, error) {
	if p.IsEmpty() {
		return r.GetItem(ctx, id)
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.ImgURL != nil {
		set("img_url", *p.ImgURL)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if p.Price != nil {
		set("price", *p.Price)
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE items SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), itemColumns)
	it, err := scanItem(r.getExecutor(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update item %d: %w", id, translate(err))
	}
	return it, nil
}

func (r *ShopRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, model.ErrNotFound)
	}
	return nil
}
