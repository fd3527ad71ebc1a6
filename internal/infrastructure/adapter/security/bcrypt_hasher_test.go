package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and compare", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))

		assert.NoError(t, hasher.Compare(hash, "correct horse"))
		assert.ErrorIs(t, hasher.Compare(hash, "wrong horse"), errs.ErrInvalidCredentials)
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		a, err := hasher.Hash("same password")
		require.NoError(t, err)
		b, err := hasher.Hash("same password")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("Malformed hash is a mismatch", func(t *testing.T) {
		assert.ErrorIs(t, hasher.Compare("", "anything"), errs.ErrInvalidCredentials)
		assert.ErrorIs(t, hasher.Compare("not-a-bcrypt-hash-at-all-but-long-enough-to-parse-xxxxxxxxxx", "anything"), errs.ErrInvalidCredentials)
	})

	t.Run("Out of range cost falls back to default", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
		assert.Equal(t, 12, NewBcryptHasher(12).cost)
	})
}
