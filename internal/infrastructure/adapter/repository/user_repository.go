package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/model"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	manager *database.Manager
	logger  coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(manager *database.Manager, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		manager: manager,
		logger:  logger,
	}
}

// handleDatabaseError maps a driver error and logs what is not an expected outcome
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.manager.ErrorMapper().MapError(err, database.EntityTypeUser, operation)

	switch {
	case errors.Is(mapped, errs.ErrUserNotFound):
		r.logger.Debug("User not found", fields)
	case errors.Is(mapped, errs.ErrDuplicateEmail):
		r.logger.Warn("Duplicate email on user insert", fields)
	default:
		fields["error"] = err.Error()
		fields["operation"] = operation
		r.logger.Error("Database error on users", fields)
	}
	return mapped
}

// Create inserts the user with a single INSERT; the unique index on email
// decides between concurrent registrations of the same address
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err == nil {
		err = db.WithContext(ctx).Create(userToModel(user)).Error
	}
	if err != nil {
		return r.handleDatabaseError("create", err, map[string]any{"user_id": user.ID})
	}

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"tier":    user.Tier,
	})
	return nil
}

// GetByEmail retrieves a user by email, normalized before lookup
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrUserNotFound
	}

	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err != nil {
		return nil, r.handleDatabaseError("get_by_email", err, map[string]any{})
	}

	var userModel model.User
	if err := db.WithContext(ctx).Where("email = ?", normalized).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_email", err, map[string]any{})
	}
	return r.toEntity("get_by_email", &userModel)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, errs.ErrUserNotFound
	}

	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	db, err := r.manager.Conn()
	if err != nil {
		return nil, r.handleDatabaseError("get_by_id", err, map[string]any{"user_id": id})
	}

	var userModel model.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_id", err, map[string]any{"user_id": id})
	}
	return r.toEntity("get_by_id", &userModel)
}

func (r *UserRepository) toEntity(operation string, m *model.User) (*entity.User, error) {
	user, err := userToEntity(m)
	if err != nil {
		r.logger.Error("Stored user is invalid", map[string]any{
			"user_id":   m.ID,
			"operation": operation,
			"error":     err.Error(),
		})
		return nil, errs.NewPersistenceError(operation, string(database.EntityTypeUser), err)
	}
	return user, nil
}
