package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors returned by every repository, so handlers dispatch with
// errors.Is instead of string matching or driver-specific codes.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means an insert or update violated a uniqueness
	// constraint (duplicate email, slug, reference number, ...).
	ErrDuplicate = errors.New("duplicate")
)

// translate maps driver errors onto the repository sentinels. Unknown errors
// pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	}
	return err
}
