package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

// Tier is a subscription level
type Tier string

const (
	TierFree  Tier = "free"
	TierBasic Tier = "basic"
	TierPro   Tier = "pro"
	TierElite Tier = "elite"
)

// DefaultPredictionQuota is the number of predictions a fresh account may request
const DefaultPredictionQuota = 4

// Password length bounds. bcrypt ignores everything past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// IsValidTier checks if the tier is one of the known subscription levels
func IsValidTier(t Tier) bool {
	switch t {
	case TierFree, TierBasic, TierPro, TierElite:
		return true
	}
	return false
}

// User represents an account holder
type User struct {
	ID                   string
	Email                string
	PasswordHash         string     // never plaintext
	Tier                 Tier       // defaults to free
	PredictionsRemaining int        // quota, defaults to 4
	SubscriptionEnd      *time.Time // nil for free tier
	CreatedAt            time.Time
}

// PublicUser is the projection of a user that leaves the service
type PublicUser struct {
	ID                   string
	Email                string
	Tier                 Tier
	PredictionsRemaining int
	SubscriptionEnd      *time.Time
}

// NewUser creates a free-tier user with the default quota
func NewUser(id, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidRequest
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		ID:                   id,
		Email:                normalized,
		PasswordHash:         passwordHash,
		Tier:                 TierFree,
		PredictionsRemaining: DefaultPredictionQuota,
		CreatedAt:            timeProvider.Now(),
	}, nil
}

// Public strips the password hash
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:                   u.ID,
		Email:                u.Email,
		Tier:                 u.Tier,
		PredictionsRemaining: u.PredictionsRemaining,
		SubscriptionEnd:      u.SubscriptionEnd,
	}
}

// NormalizeEmail trims and lower-cases an address and checks its syntax
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", errs.ErrInvalidRequest)
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", fmt.Errorf("%w: invalid email address", errs.ErrInvalidRequest)
	}
	return trimmed, nil
}

// ValidatePassword checks the plaintext length bounds
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			errs.ErrInvalidRequest, MinPasswordLength, MaxPasswordLength)
	}
	return nil
}
