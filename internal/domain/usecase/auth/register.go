package auth

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

// Register creates a free-tier account and opens a session for it.
// The email's uniqueness is left to the store's unique index, so the only
// store call is the insert itself.
func (a *AuthUseCase) Register(ctx context.Context, email, password string) (*usecase.Session, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	id, err := a.idGenerator.NewID()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate user id: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(id, normalized, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		if errs.IsDuplicateEmailError(err) {
			a.logger.Info("Registration with a taken email", nil)
		}
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"tier":   user.Tier,
	})

	return a.openSession(user)
}
