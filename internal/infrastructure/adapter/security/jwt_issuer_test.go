package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/security"
	coremocks "github.com/amirhossein-jamali/nerdytips/mocks/port/core"
)

func TestJWTIssuer(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	identity := security.Identity{UserID: "user-1", Email: "fan@example.com"}

	newIssuer := func(t *testing.T, clock *time.Time) *JWTIssuer {
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Now().RunAndReturn(func() time.Time { return *clock }).Maybe()
		issuer, err := NewJWTIssuer("test-secret", "nerdytips", time.Hour, tp)
		require.NoError(t, err)
		return issuer
	}

	t.Run("Issue and verify", func(t *testing.T) {
		clock := now
		issuer := newIssuer(t, &clock)

		token, expiresAt, err := issuer.Issue(identity)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), expiresAt)

		got, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, identity, *got)
	})

	t.Run("Expired token", func(t *testing.T) {
		clock := now
		issuer := newIssuer(t, &clock)

		token, _, err := issuer.Issue(identity)
		require.NoError(t, err)

		clock = now.Add(2 * time.Hour)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		clock := now
		issuer := newIssuer(t, &clock)

		other, err := NewJWTIssuer("other-secret", "nerdytips", time.Hour, issuer.timeProvider)
		require.NoError(t, err)
		token, _, err := other.Issue(identity)
		require.NoError(t, err)

		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Foreign algorithm and malformed input", func(t *testing.T) {
		clock := now
		issuer := newIssuer(t, &clock)

		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "nerdytips",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		for _, token := range []string{"", "garbage", "a.b.c", none} {
			_, err := issuer.Verify(token)
			assert.ErrorIs(t, err, errs.ErrUnauthorized, "token %q", token)
		}
	})

	t.Run("Wrong issuer and missing subject", func(t *testing.T) {
		clock := now
		issuer := newIssuer(t, &clock)

		sign := func(claims jwt.Claims) string {
			s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
			require.NoError(t, err)
			return s
		}

		_, err := issuer.Verify(sign(jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = issuer.Verify(sign(jwt.RegisteredClaims{
			Issuer:    "nerdytips",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = issuer.Verify(sign(jwt.RegisteredClaims{Subject: "user-1", Issuer: "nerdytips"}))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Constructor validation", func(t *testing.T) {
		tp := coremocks.NewMockTimeProvider(t)
		_, err := NewJWTIssuer("", "nerdytips", time.Hour, tp)
		assert.ErrorIs(t, err, ErrEmptySecret)

		_, err = NewJWTIssuer("secret", "nerdytips", 0, tp)
		assert.Error(t, err)
	})
}
