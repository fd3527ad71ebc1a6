package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypePrediction represents the prediction entity
	EntityTypePrediction EntityType = "prediction"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Anything it does not
// recognise becomes a PersistenceError carrying the original cause.
func (m *ErrorMapper) MapError(err error, entityType EntityType, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && entityType == EntityTypeUser {
		return domainErr.ErrUserNotFound
	}

	switch {
	case IsUniqueViolation(err) && entityType == EntityTypeUser:
		return domainErr.ErrDuplicateEmail
	case IsUniqueViolation(err), isConstraintViolation(err):
		return domainErr.NewPersistenceError(operation, string(entityType),
			errors.Join(domainErr.ErrConstraintViolation, err))
	case isConnectionFailure(err):
		return domainErr.NewPersistenceError(operation, string(entityType),
			errors.Join(domainErr.ErrDatabaseConnection, err))
	default:
		return domainErr.NewPersistenceError(operation, string(entityType), err)
	}
}

// IsUniqueViolation reports unique key violations from sqlite and postgres
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func isConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "not null constraint") ||
		strings.Contains(msg, "foreign key constraint")
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrNotConnected) || errors.Is(err, ErrClosed) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "sql: database is closed") ||
		strings.Contains(msg, "timeout")
}
