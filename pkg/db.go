package pkg

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsUniqueViolationError checks if the error is a sqlite unique
// constraint violation
func IsUniqueViolationError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// IsForeignKeyViolationError checks if the error is a sqlite foreign
// key constraint violation
func IsForeignKeyViolationError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
