package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            3000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         "nerdytips.db",
			QueryTimeout: 5 * time.Second,
		},
		Auth: config.AuthConfig{
			JWTSecret: "dev-secret",
			TokenTTL:  24 * time.Hour,
		},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("Development defaults pass", func(t *testing.T) {
		assert.NoError(t, validateConfig(validConfig()))
	})

	t.Run("Missing values are listed together", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Port = 0
		cfg.Auth.JWTSecret = ""
		cfg.Database.Path = ""

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "auth.jwtSecret")
		assert.Contains(t, err.Error(), "database.path")
	})

	t.Run("Postgres needs connection fields", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Driver = "postgres"

		err := validateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
		assert.Contains(t, err.Error(), "database.username")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database.Driver = "mysql"
		assert.ErrorContains(t, validateConfig(cfg), "invalid database driver")
	})

	t.Run("Unknown environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "qa"
		assert.ErrorContains(t, validateConfig(cfg), "invalid environment value")
	})

	t.Run("Production needs a long secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = config.Production
		assert.ErrorContains(t, validateConfig(cfg), "auth.jwtSecret must be at least")

		cfg.Auth.JWTSecret = strings.Repeat("k", minJWTSecretLength)
		assert.NoError(t, validateConfig(cfg))
	})

	t.Run("Production postgres requires TLS", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = config.Production
		cfg.Auth.JWTSecret = strings.Repeat("k", minJWTSecretLength)
		cfg.Database.Driver = "postgres"
		cfg.Database.Host = "db"
		cfg.Database.Username = "nerdy"
		cfg.Database.Database = "nerdytips"
		cfg.Database.SSLMode = "disable"
		assert.ErrorContains(t, validateConfig(cfg), "database.sslMode")

		cfg.Database.SSLMode = "require"
		assert.NoError(t, validateConfig(cfg))
	})
}
