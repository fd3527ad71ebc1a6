package security

import "time"

// Identity is what a session token vouches for
type Identity struct {
	UserID string
	Email  string
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	// Issue signs a token for the identity and returns it with its expiry
	Issue(identity Identity) (string, time.Time, error)

	// Verify checks signature and expiry without any I/O.
	// Missing, malformed, foreign or expired tokens give ErrUnauthorized.
	Verify(token string) (*Identity, error)
}
