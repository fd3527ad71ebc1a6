package auth

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/security"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths cost one hash comparison
const dummyPassword = "nerdytips-timing-equalizer"

var _ usecase.AuthUseCase = (*AuthUseCase)(nil)

// AuthUseCase handles registration, login and session checks
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenIssuer
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Verify checks a session token; no I/O
func (a *AuthUseCase) Verify(token string) (*security.Identity, error) {
	return a.tokens.Verify(token)
}

// Profile returns the public view of the user behind a verified identity
func (a *AuthUseCase) Profile(ctx context.Context, userID string) (*entity.PublicUser, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			// The token outlived its account
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// openSession issues a token for the user
func (a *AuthUseCase) openSession(user *entity.User) (*usecase.Session, error) {
	token, expiresAt, err := a.tokens.Issue(security.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		a.logger.Error("Failed to issue session token", map[string]any{
			"userId": user.ID,
			"error":  err,
		})
		return nil, err
	}
	return &usecase.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Public(),
	}, nil
}

// burnComparison spends one hash comparison against a throwaway hash
func (a *AuthUseCase) burnComparison(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Failed to prepare dummy hash", map[string]any{"error": err})
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash != "" {
		_ = a.hasher.Compare(a.dummyHash, password)
	}
}
