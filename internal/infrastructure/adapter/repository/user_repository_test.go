package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database"
)

func newTestUser(t *testing.T, testDB *database.TestDBManager, id, email string) *entity.User {
	t.Helper()
	user, err := entity.NewUser(id, email, "$2a$04$hashhashhashhashhashhu", testDB.TimeProvider)
	require.NoError(t, err)
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and read back", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		user := newTestUser(t, testDB, "u1", "Fan@Example.com")
		require.NoError(t, repo.Create(ctx, user))

		byEmail, err := repo.GetByEmail(ctx, "  FAN@example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "u1", byEmail.ID)
		assert.Equal(t, "fan@example.com", byEmail.Email)
		assert.Equal(t, entity.TierFree, byEmail.Tier)
		assert.Equal(t, entity.DefaultPredictionQuota, byEmail.PredictionsRemaining)
		assert.Nil(t, byEmail.SubscriptionEnd)
		assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)

		byID, err := repo.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, byEmail.Email, byID.Email)
	})

	t.Run("Subscription end survives a round trip", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		user := newTestUser(t, testDB, "u2", "pro@example.com")
		end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		user.Tier = entity.TierPro
		user.SubscriptionEnd = &end
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByID(ctx, "u2")
		require.NoError(t, err)
		require.NotNil(t, got.SubscriptionEnd)
		assert.True(t, end.Equal(*got.SubscriptionEnd))
		assert.Equal(t, entity.TierPro, got.Tier)
	})

	t.Run("Duplicate email leaves the first row untouched", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		require.NoError(t, repo.Create(ctx, newTestUser(t, testDB, "first", "dup@example.com")))

		second := newTestUser(t, testDB, "second", "DUP@example.com")
		second.PasswordHash = "other-hash"
		err := repo.Create(ctx, second)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)

		got, err := repo.GetByEmail(ctx, "dup@example.com")
		require.NoError(t, err)
		assert.Equal(t, "first", got.ID)
		assert.NotEqual(t, "other-hash", got.PasswordHash)

		var count int64
		require.NoError(t, testDB.Manager.DB().Table("users").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Concurrent registrations of one email", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		const workers = 5
		users := make([]*entity.User, workers)
		for i := range users {
			users[i] = newTestUser(t, testDB, string(rune('a'+i)), "race@example.com")
		}

		results := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = repo.Create(ctx, users[i])
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range results {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		}
		assert.Equal(t, 1, succeeded)
	})

	t.Run("Missing users", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = repo.GetByEmail(ctx, "not-an-email")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)

		_, err = repo.GetByID(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Unknown stored tier is not served", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)

		require.NoError(t, repo.Create(ctx, newTestUser(t, testDB, "u4", "odd@example.com")))
		require.NoError(t, testDB.Manager.DB().Exec("UPDATE users SET tier = ? WHERE id = ?", "platinum", "u4").Error)

		_, err := repo.GetByID(ctx, "u4")
		assert.True(t, errs.IsPersistenceError(err))
		assert.ErrorIs(t, err, errs.ErrInvalidTier)

		_, err = repo.GetByEmail(ctx, "odd@example.com")
		assert.ErrorIs(t, err, errs.ErrInvalidTier)
	})

	t.Run("Closed database is a persistence error", func(t *testing.T) {
		testDB := database.NewTestDBManager(t)
		repo := NewUserRepository(testDB.Manager, testDB.Logger)
		require.NoError(t, testDB.Manager.Close())

		err := repo.Create(ctx, newTestUser(t, testDB, "u3", "closed@example.com"))
		assert.True(t, errs.IsPersistenceError(err))

		_, err = repo.GetByEmail(ctx, "closed@example.com")
		assert.True(t, errs.IsPersistenceError(err))

		_, err = repo.GetByID(ctx, "u3")
		assert.True(t, errs.IsPersistenceError(err))
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
