package auth

import (
	"context"
	"strings"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

// Login opens a session for existing credentials. Unknown emails and wrong
// passwords fail identically with ErrInvalidCredentials.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (*usecase.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			a.burnComparison(password)
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Login with a wrong password", map[string]any{"userId": user.ID})
		return nil, errs.ErrInvalidCredentials
	}

	return a.openSession(user)
}
