package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/config"
)

// minJWTSecretLength is the shortest HS256 key accepted in production
const minJWTSecretLength = 32

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or NT_DB_PATH environment variable)")
		}
	case database.DriverPostgres:
		for key, val := range map[string]string{
			"database.host":     cfg.Database.Host,
			"database.username": cfg.Database.Username,
			"database.database": cfg.Database.Database,
		} {
			if val == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverSQLite, database.DriverPostgres)
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate auth configuration
	if cfg.Auth.TokenTTL <= 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or JWT_SECRET environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Production rejects settings that are only acceptable locally
	if cfg.IsProduction() {
		var problems []string
		if len(cfg.Auth.JWTSecret) < minJWTSecretLength {
			problems = append(problems, fmt.Sprintf("auth.jwtSecret must be at least %d bytes", minJWTSecretLength))
		}
		if cfg.Database.Driver == database.DriverPostgres {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				problems = append(problems, "database.sslMode should be 'require', 'verify-ca', or 'verify-full'")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			problems = append(problems, "server.readTimeout is too low")
		}
		if len(problems) > 0 {
			return fmt.Errorf("insecure production configuration: %v", problems)
		}
	}

	return nil
}
