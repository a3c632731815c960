package repository

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the four shop tables if they do not exist yet.
func (r *ShopRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Truncate empties every table and resets the id sequences.
func (r *ShopRepository) Truncate(ctx context.Context) error {
	_, err := r.getExecutor(ctx).Exec(ctx, "TRUNCATE TABLE orderitems, orders, items, customers RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
