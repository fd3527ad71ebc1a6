package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/config"
)

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Driver:       DriverSQLite,
			Path:         "nerdytips.db",
			MaxOpenConns: 1,
			QueryTimeout: time.Second,
		}
	}

	t.Run("Valid sqlite", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Sqlite without path", func(t *testing.T) {
		c := valid()
		c.Path = " "
		assert.Error(t, c.Validate())
	})

	t.Run("Postgres needs connection fields", func(t *testing.T) {
		c := valid()
		c.Driver = DriverPostgres
		assert.ErrorContains(t, c.Validate(), "host")

		c.Host, c.Port, c.Username, c.Database, c.SSLMode = "db", 5432, "nerdy", "tips", "disable"
		assert.NoError(t, c.Validate())

		c.SSLMode = "sometimes"
		assert.ErrorContains(t, c.Validate(), "SSL mode")
	})

	t.Run("Pool and timeout bounds", func(t *testing.T) {
		c := valid()
		c.MaxOpenConns = 0
		assert.Error(t, c.Validate())

		c = valid()
		c.QueryTimeout = 0
		assert.Error(t, c.Validate())

		c = valid()
		c.RetryAttempts = -1
		assert.Error(t, c.Validate())
	})
}

func TestConfigDSN(t *testing.T) {
	t.Run("File database gets WAL and busy timeout", func(t *testing.T) {
		c := &Config{Driver: DriverSQLite, Path: "nerdytips.db"}
		assert.False(t, c.IsInMemory())
		assert.Equal(t, "nerdytips.db?_busy_timeout=5000&_journal_mode=WAL", c.DSN())
	})

	t.Run("In-memory database keeps its query string", func(t *testing.T) {
		c := &Config{Driver: DriverSQLite, Path: "file:x?mode=memory&cache=shared"}
		assert.True(t, c.IsInMemory())
		assert.Equal(t, "file:x?mode=memory&cache=shared&_busy_timeout=5000", c.DSN())
	})

	t.Run("Postgres key value DSN", func(t *testing.T) {
		c := &Config{Driver: DriverPostgres, Host: "h", Port: 5432, Username: "u", Password: "p", Database: "d", SSLMode: "disable"}
		assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", c.DSN())
		assert.NotContains(t, c.Redacted(), "password")
	})
}

func TestFromAppConfig(t *testing.T) {
	appConf := &config.Config{
		Database: config.DatabaseConfig{
			Driver:        "",
			Path:          "tips.db",
			Port:          "5432",
			MaxOpenConns:  25,
			QueryTimeout:  3 * time.Second,
			RetryAttempts: 2,
		},
		Logger: config.LoggerConfig{Level: "debug"},
	}

	dbConf := FromAppConfig(appConf)
	require.NotNil(t, dbConf)
	assert.Equal(t, DriverSQLite, dbConf.Driver)
	assert.Equal(t, "tips.db", dbConf.Path)
	assert.Equal(t, 5432, dbConf.Port)
	assert.Equal(t, 1, dbConf.MaxOpenConns)
	assert.Equal(t, "debug", dbConf.LogLevel)
	assert.Equal(t, 2, dbConf.RetryAttempts)

	appConf.Database.Driver = DriverPostgres
	assert.Equal(t, 25, FromAppConfig(appConf).MaxOpenConns)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("http"))
	assert.Equal(t, 0, ParsePort("70000"))
}
