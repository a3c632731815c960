package repository

import (
	"errors"
	"fmt"

	"fsanano/shop-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL integrity constraint violations (class 23) and numeric overflow.
const (
	codeNumericOutOfRange   = "22003"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// translate maps driver errors onto the model sentinels so callers above the
// repository never need to know about pgx.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", model.ErrDuplicate, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", model.ErrInvalidReference, pgErr.ConstraintName)
		case codeNumericOutOfRange:
			return fmt.Errorf("%w: %s", model.ErrInvalidInput, pgErr.Message)
		case codeNotNullViolation:
			return fmt.Errorf("%w: %s is required", model.ErrInvalidInput, pgErr.ColumnName)
		}
	}
	return err
}
