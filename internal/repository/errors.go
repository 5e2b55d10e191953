package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint (e.g. services.slug).
var ErrConflict = errors.New("conflict")

const uniqueViolation = "23505"

// mapWriteError converts a unique violation into ErrConflict and leaves other errors untouched.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return err
}
