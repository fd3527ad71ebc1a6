package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/security"
)

// Session is a signed token together with the user it was issued for
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entity.PublicUser
}

// AuthUseCase defines the credential operations
type AuthUseCase interface {
	// Register creates an account and opens a session for it.
	// Performs exactly one store insert; fails with ErrDuplicateEmail on a taken email.
	Register(ctx context.Context, email, password string) (*Session, error)

	// Login opens a session for existing credentials.
	// Performs exactly one store read; fails with ErrInvalidCredentials
	// without revealing whether the email exists.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Verify checks a session token without I/O
	Verify(token string) (*security.Identity, error)

	// Profile returns the public view of the authenticated user
	Profile(ctx context.Context, userID string) (*entity.PublicUser, error)
}
