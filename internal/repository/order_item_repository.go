package repository

import (
	"context"
	"fmt"
	"strings"

	"fsanano/shop-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// Order item reads always bring the catalogue entry along.
const orderItemSelect = `SELECT oi.id, oi.quantity, oi.order_id, oi.item_id, oi.created_at, oi.updated_at,
	i.id, i.title, i.img_url, i.description, i.category, i.price
FROM orderitems oi
JOIN items i ON i.id = oi.item_id`

func scanOrderItem(row pgx.Row) (*model.OrderItem, error) {
	var oi model.OrderItem
	var it model.Item
	err := row.Scan(
		&oi.ID, &oi.Quantity, &oi.OrderID, &oi.ItemID, &oi.CreatedAt, &oi.UpdatedAt,
		&it.ID, &it.Title, &it.ImgURL, &it.Description, &it.Category, &it.Price,
	)
	if err != nil {
		return nil, err
	}
	oi.Item = &it
	return &oi, nil
}

func (r *ShopRepository) queryOrderItems(ctx context.Context, sql string, args ...any) ([]model.OrderItem, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []model.OrderItem{}
	for rows.Next() {
		oi, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *oi)
	}
	return lines, rows.Err()
}

func (r *ShopRepository) ListOrderItems(ctx context.Context) ([]model.OrderItem, error) {
	lines, err := r.queryOrderItems(ctx, orderItemSelect+" ORDER BY oi.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return lines, nil
}

func (r *ShopRepository) ListOrderItemsByOrders(ctx context.Context, orderIDs []int) ([]model.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []model.OrderItem{}, nil
	}
	lines, err := r.queryOrderItems(ctx, orderItemSelect+" WHERE oi.order_id = ANY($1) ORDER BY oi.id", orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items by order: %w", err)
	}
	return lines, nil
}

func (r *ShopRepository) ListOrderItemsByItems(ctx context.Context, itemIDs []int) ([]model.OrderItem, error) {
	if len(itemIDs) == 0 {
		return []model.OrderItem{}, nil
	}
	lines, err := r.queryOrderItems(ctx, orderItemSelect+" WHERE oi.item_id = ANY($1) ORDER BY oi.id", itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items by item: %w", err)
	}
	return lines, nil
}

func (r *ShopRepository) GetOrderItem(ctx context.Context, id int) (*model.OrderItem, error) {
	oi, err := scanOrderItem(r.getExecutor(ctx).QueryRow(ctx, orderItemSelect+" WHERE oi.id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get order item %d: %w", id, translate(err))
	}
	return oi, nil
}

// CreateOrderItem inserts oi and fills in its id and created_at. The caller
// reloads it to get the joined item.
func (r *ShopRepository) CreateOrderItem(ctx context.Context, oi *model.OrderItem) error {
	err := r.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO orderitems (quantity, order_id, item_id) VALUES ($1, $2, $3) RETURNING id, created_at",
		oi.Quantity, oi.OrderID, oi.ItemID,
	).Scan(&oi.ID, &oi.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order item: %w", translate(err))
	}
	return nil
}

func (r *ShopRepository) UpdateOrderItem(ctx context.Context, id int, p model.OrderItemPatch) error {
	if p.IsEmpty() {
		return nil
	}

	sets := []string{"updated_at = now()"}
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Quantity != nil {
		set("quantity", *p.Quantity)
	}
	if p.OrderID != nil {
		set("order_id", *p.OrderID)
	}
	if p.ItemID != nil {
		set("item_id", *p.ItemID)
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE orderitems SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := r.getExecutor(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update order item %d: %w", id, translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order item %d: %w", id, model.ErrNotFound)
	}
	return nil
}

func (r *ShopRepository) DeleteOrderItem(ctx context.Context, id int) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM orderitems WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order item %d: %w", id, translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order item %d: %w", id, model.ErrNotFound)
	}
	return nil
}
