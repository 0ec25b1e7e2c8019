package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsNotFound reports whether a repository error means the row does not
// exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey reports whether an insert failed on a primary-key or
// unique constraint. The string checks cover both PostgreSQL and
// SQLite drivers.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}

// pageScope applies 1-indexed pagination. Page validation happens in
// the service layer; repositories assume page >= 1.
func pageScope(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}
