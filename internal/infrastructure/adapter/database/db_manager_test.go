package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/nerdytips/mocks/port/core"
)

func TestManagerLifecycle(t *testing.T) {
	t.Run("Connect, migrate, ping and close", func(t *testing.T) {
		testDB := NewTestDBManager(t)
		ctx := context.Background()

		require.NoError(t, testDB.Manager.Ping(ctx))

		version, err := testDB.Manager.MigrationManager().GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)

		assert.True(t, testDB.Manager.DB().Migrator().HasTable("users"))
		assert.True(t, testDB.Manager.DB().Migrator().HasTable("predictions"))

		// Migrating again is a no-op
		require.NoError(t, testDB.Manager.Migrate(ctx))
		var count int64
		require.NoError(t, testDB.Manager.DB().Table("migration_versions").Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Operations before Connect fail", func(t *testing.T) {
		m := NewManager(TestConfig("unconnected"), logger.NewNoopLogger(), timeprovider.NewUTCTimeProvider())

		assert.ErrorIs(t, m.Ping(context.Background()), ErrNotConnected)
		assert.ErrorIs(t, m.Migrate(context.Background()), ErrNotConnected)
		assert.NoError(t, m.Close())
	})

	t.Run("Closed manager refuses new work", func(t *testing.T) {
		testDB := NewTestDBManager(t)
		ctx := context.Background()

		_, err := testDB.Manager.Conn()
		require.NoError(t, err)

		require.NoError(t, testDB.Manager.Close())
		assert.NoError(t, testDB.Manager.Close())

		_, err = testDB.Manager.Conn()
		assert.ErrorIs(t, err, ErrClosed)
		assert.ErrorIs(t, testDB.Manager.Ping(ctx), ErrClosed)
		assert.ErrorIs(t, testDB.Manager.Migrate(ctx), ErrClosed)
		assert.NotNil(t, testDB.Manager.DB())
	})

	t.Run("Conn before Connect", func(t *testing.T) {
		m := NewManager(TestConfig("no-conn"), logger.NewNoopLogger(), timeprovider.NewUTCTimeProvider())
		_, err := m.Conn()
		assert.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("Invalid configuration is rejected", func(t *testing.T) {
		cfg := TestConfig("invalid")
		cfg.Driver = "mysql"
		m := NewManager(cfg, logger.NewNoopLogger(), timeprovider.NewUTCTimeProvider())

		_, err := m.Connect(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("Pool monitor collects metrics", func(t *testing.T) {
		cfg := TestConfig("monitored")
		cfg.MonitorInterval = time.Hour
		m := NewManager(cfg, logger.NewNoopLogger(), timeprovider.NewUTCTimeProvider())

		_, err := m.Connect(context.Background())
		require.NoError(t, err)
		defer m.Close()

		assert.Equal(t, 1, m.PoolMetrics().MaxOpenConnections)
	})

	t.Run("WithTimeout takes deadlines from the clock", func(t *testing.T) {
		cfg := TestConfig("clock")
		clock := coremocks.NewMockTimeProvider(t)
		parent := context.Background()
		bounded, cancel := context.WithCancel(parent)
		defer cancel()
		clock.EXPECT().WithTimeout(parent, coreport.Duration(cfg.QueryTimeout)).Return(bounded, cancel).Once()

		m := NewManager(cfg, logger.NewNoopLogger(), clock)
		ctx, release := m.WithTimeout(parent)
		defer release()
		assert.Equal(t, bounded, ctx)
	})

	t.Run("WithTimeout applies the query timeout", func(t *testing.T) {
		testDB := NewTestDBManager(t)
		ctx, cancel := testDB.Manager.WithTimeout(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(testDB.Config.QueryTimeout), deadline, time.Second)
	})
}
