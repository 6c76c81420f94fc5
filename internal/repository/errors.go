package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotOwner       = errors.New("user does not exist or is not an owner")
	ErrNotWalker      = errors.New("user does not exist or is not a walker")
	ErrStatusConflict = errors.New("status does not allow this change")
	ErrDuplicate      = errors.New("duplicate entry")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// wrapWriteError tags unique violations with ErrDuplicate, keeping the driver error in the chain.
func wrapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
