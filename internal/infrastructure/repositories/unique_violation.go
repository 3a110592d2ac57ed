package repositories

import "strings"

// isUniqueViolation matches duplicate-key errors from Postgres and SQLite so
// callers see a single ErrAlreadyExists instead of driver-specific codes.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
