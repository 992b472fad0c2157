package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions translating PostgreSQL failure modes into checks the
// repositories can map onto domain errors. Translation happens here, once,
// so the rest of the system never inspects driver error strings.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isUndefinedTable(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "does not exist") ||
		strings.Contains(errMsg, "42p01") // PostgreSQL undefined_table error code
}
