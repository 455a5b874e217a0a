package repository

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned (wrapped) when a lookup by id matches no row.
// Handlers map it to an HTTP 404.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err is a wrapped ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// validUUID reports whether id parses as a UUID. Ids arrive from URL
// segments; a malformed one can never match a row, so the Postgres repos
// treat it as not-found instead of letting the uuid column reject it
// with a query error.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
