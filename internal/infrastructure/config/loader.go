package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override, e.g. NT_SERVER_PORT
const EnvPrefix = "NT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Missing .env is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 90)      // seconds, generation may take a while
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.staticDir", "dist")
	v.SetDefault("server.devProxyURL", "http://localhost:5173")
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "nerdytips.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTL", 24) // hours
	v.SetDefault("auth.issuer", "nerdytips")
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("generator.model", "gemini-3-flash-preview")
	v.SetDefault("generator.timeout", 30) // seconds
	v.SetDefault("generator.maxRetries", 1)
	v.SetDefault("generator.retryDelay", 500) // milliseconds
	v.SetDefault("generator.useSearch", true)

	v.SetDefault("predictions.seedOnStartup", true)

	v.SetDefault("rateLimit.requestsPerMinute", 10)
	v.SetDefault("rateLimit.burst", 3)
}

// getEnvironment determines the environment from NT_ENV, falling back to NODE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = os.Getenv("NODE_ENV")
	}
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets the conventional unprefixed secrets and a few
// shorthand names win over file values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string][]string{
		"auth.jwtSecret":           {"JWT_SECRET", "NT_JWT_SECRET"},
		"generator.apiKey":         {"GEMINI_API_KEY", "NT_GEMINI_API_KEY"},
		"payments.stripeSecretKey": {"STRIPE_SECRET_KEY", "NT_STRIPE_SECRET_KEY"},
		"database.path":            {"NT_DB_PATH"},
		"database.driver":          {"NT_DB_DRIVER"},
		"database.host":            {"NT_DB_HOST"},
		"database.port":            {"NT_DB_PORT"},
		"database.username":        {"NT_DB_USERNAME"},
		"database.password":        {"NT_DB_PASSWORD"},
		"database.database":        {"NT_DB_NAME"},
		"database.sslMode":         {"NT_DB_SSL_MODE"},
		"server.host":              {"NT_SERVER_HOST"},
		"logger.level":             {"NT_LOGGER_LEVEL"},
	}
	for key, names := range stringOverrides {
		for _, name := range names {
			if val := os.Getenv(name); val != "" {
				v.Set(key, val)
				break
			}
		}
	}

	if port := getEnvInt("PORT", -1); port > 0 {
		v.Set("server.port", port)
	}
	if port := getEnvInt("NT_SERVER_PORT", -1); port > 0 {
		v.Set("server.port", port)
	}
	if retries := getEnvInt("NT_GENERATOR_MAX_RETRIES", -1); retries >= 0 {
		v.Set("generator.maxRetries", retries)
	}
	if timeout := getEnvInt("NT_GENERATOR_TIMEOUT_SECONDS", -1); timeout > 0 {
		v.Set("generator.timeout", timeout)
	}
	if attempts := getEnvInt("NT_DB_RETRY_ATTEMPTS", -1); attempts >= 0 {
		v.Set("database.retryAttempts", attempts)
	}
	if seed := os.Getenv("NT_PREDICTIONS_SEED_ON_STARTUP"); seed != "" {
		if b, err := strconv.ParseBool(seed); err == nil {
			v.Set("predictions.seedOnStartup", b)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw integers read from config into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour

	config.Generator.Timeout = time.Duration(config.Generator.Timeout) * time.Second
	config.Generator.RetryDelay = time.Duration(config.Generator.RetryDelay) * time.Millisecond
}
