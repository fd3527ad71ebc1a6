package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/nerdytips/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("u1", "  Fan@NerdyTips.AI ", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "fan@nerdytips.ai", user.Email)
		assert.Equal(t, TierFree, user.Tier)
		assert.Equal(t, DefaultPredictionQuota, user.PredictionsRemaining)
		assert.Nil(t, user.SubscriptionEnd)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Missing fields", func(t *testing.T) {
		testCases := map[string]struct{ id, email, hash string }{
			"Empty id":       {"", "fan@nerdytips.ai", "hash"},
			"Empty email":    {"u1", "   ", "hash"},
			"Invalid email":  {"u1", "not-an-email", "hash"},
			"Display name":   {"u1", "Fan <fan@nerdytips.ai>", "hash"},
			"Empty password": {"u1", "fan@nerdytips.ai", ""},
		}

		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				user, err := NewUser(tc.id, tc.email, tc.hash, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserPublic(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	user := &User{
		ID:                   "u1",
		Email:                "fan@nerdytips.ai",
		PasswordHash:         "$2a$10$secret",
		Tier:                 TierPro,
		PredictionsRemaining: 10,
		SubscriptionEnd:      &end,
	}

	public := user.Public()
	assert.Equal(t, PublicUser{
		ID:                   "u1",
		Email:                "fan@nerdytips.ai",
		Tier:                 TierPro,
		PredictionsRemaining: 10,
		SubscriptionEnd:      &end,
	}, public)
}

func TestTier(t *testing.T) {
	for _, tier := range []Tier{TierFree, TierBasic, TierPro, TierElite} {
		assert.True(t, IsValidTier(tier), tier)
	}
	assert.False(t, IsValidTier("platinum"))
	assert.False(t, IsValidTier(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword(strings.Repeat("p", MaxPasswordLength)))
	assert.ErrorIs(t, ValidatePassword("1234567"), errs.ErrInvalidRequest)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("p", MaxPasswordLength+1)), errs.ErrInvalidRequest)
}
