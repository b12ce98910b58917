package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE
// (SQLITE_CONSTRAINT_UNIQUE).
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
