package repository

import (
	"context"
	"fmt"

	"fsanano/shop-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const customerColumns = "id, name, username, password_hash, wallet, admin, created_at, updated_at"

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Username, &c.PasswordHash, &c.Wallet, &c.Admin, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ShopRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.getExecutor(ctx).Query(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *ShopRepository) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	c, err := scanCustomer(r.getExecutor(ctx).QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, translate(err))
	}
	return c, nil
}

func (r *ShopRepository) GetCustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	c, err := scanCustomer(r.getExecutor(ctx).QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE username = $1", username))
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by username: %w", translate(err))
	}
	return c, nil
}

// CreateCustomer inserts c and fills in its id and created_at.
func (r *ShopRepository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	err := r.getExecutor(ctx).QueryRow(ctx,
		"INSERT INTO customers (name, username, password_hash, wallet, admin) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at",
		c.Name, c.Username, c.PasswordHash, c.Wallet, c.Admin,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", translate(err))
	}
	return nil
}

func (r *ShopRepository) UpdateCustomerWallet(ctx context.Context, id int, wallet decimal.Decimal) (*model.Customer, error) {
	c, err := scanCustomer(r.getExecutor(ctx).QueryRow(ctx,
		"UPDATE customers SET wallet = $1, updated_at = now() WHERE id = $2 RETURNING "+customerColumns,
		wallet, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update customer %d wallet: %w", id, translate(err))
	}
	return c, nil
}

func (r *ShopRepository) DeleteCustomer(ctx context.Context, id int) error {
	tag, err := r.getExecutor(ctx).Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", id, model.ErrNotFound)
	}
	return nil
}
