package dto

import (
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	Tier                 string     `json:"tier"`
	PredictionsRemaining int        `json:"predictionsRemaining"`
	SubscriptionEnd      *time.Time `json:"subscriptionEnd,omitempty"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// NewUserResponse converts a public user
func NewUserResponse(u entity.PublicUser) UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Tier:                 string(u.Tier),
		PredictionsRemaining: u.PredictionsRemaining,
		SubscriptionEnd:      u.SubscriptionEnd,
	}
}

// NewAuthResponse converts an opened session
func NewAuthResponse(s *usecase.Session) AuthResponse {
	return AuthResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      NewUserResponse(s.User),
	}
}
