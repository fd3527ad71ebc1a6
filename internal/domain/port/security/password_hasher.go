package security

// PasswordHasher turns plaintext passwords into salted one-way hashes
type PasswordHasher interface {
	// Hash returns a salted hash of the password
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash, ErrInvalidCredentials otherwise
	Compare(hash, password string) error
}
