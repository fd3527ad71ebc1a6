package persistence

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// UserRepository defines the account operations the credential flow needs
type UserRepository interface {
	// Create inserts a new user in a single statement
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrPersistence: For any other store failure
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrPersistence: For any other store failure
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrPersistence: For any other store failure
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
