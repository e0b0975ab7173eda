package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a unique or primary key
// constraint violation. Postgres surfaces these as pq errors with code
// 23505; the SQLite driver used in tests only exposes the message text.
// Races on the same key are arbitrated by the store, so callers translate
// this into the domain Conflict error instead of leaking the driver error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: PRIMARY KEY")
}
