package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors surfaced by repository implementations instead of PG codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	ErrUnavailable   = errors.New("storage unavailable")
)

// MapPgError translates the Postgres error codes higher layers handle explicitly.
// Everything else passes through untouched.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return ErrAlreadyExists
		case pgErr.Code == pgerrcode.ForeignKeyViolation, pgErr.Code == pgerrcode.CheckViolation:
			return ErrConflict
		case pgErr.Code == pgerrcode.QueryCanceled:
			// statement_timeout and lock_timeout both land here
			return fmt.Errorf("%w: %s", context.DeadlineExceeded, pgErr.Message)
		case pgerrcode.IsConnectionException(pgErr.Code), pgErr.Code == pgerrcode.TooManyConnections:
			return ErrUnavailable
		}
	}
	return err
}
