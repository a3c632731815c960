package repository

import (
	"context"
	"fmt"

	"fsanano/shop-api/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, customer_id, total, created_at, updated_at"

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.ID, &o.CustomerID, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ShopRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *ShopRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := r.queryOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *ShopRepository) ListOrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	orders, err := r.queryOrders(ctx, "SELECT "+orderColumns+" FROM orders WHERE customer_id = $1 ORDER BY id", customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of customer %d: %w", customerID, err)
	}
	return orders, nil
}

// CreateOrder stores the client supplied total as is; it is never checked
// against the order's lines.
func (r *ShopRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	err := r.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO orders (customer_id, total) VALUES ($1, $2) RETURNING id, created_at",
		o.CustomerID, o.Total,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", translate(err))
	}
	return nil
}

func (r *ShopRepository) DeleteOrder(ctx context.Context, id int) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, model.ErrNotFound)
	}
	return nil
}
