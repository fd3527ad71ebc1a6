package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Generator   GeneratorConfig   `mapstructure:"generator"`
	Payments    PaymentsConfig    `mapstructure:"payments"`
	Predictions PredictionsConfig `mapstructure:"predictions"`
	RateLimit   RateLimitConfig   `mapstructure:"rateLimit"`
}

// IsProduction reports whether the built client is served from disk
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	StaticDir         string        `mapstructure:"staticDir"`
	DevProxyURL       string        `mapstructure:"devProxyURL"`
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings.
// Path is used by sqlite, the remaining connection fields by postgres.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains session token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwtSecret"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"` // hours
	Issuer     string        `mapstructure:"issuer"`
	BcryptCost int           `mapstructure:"bcryptCost"`
}

// GeneratorConfig contains settings for the generative prediction service
type GeneratorConfig struct {
	APIKey     string        `mapstructure:"apiKey"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"` // seconds
	MaxRetries int           `mapstructure:"maxRetries"`
	RetryDelay time.Duration `mapstructure:"retryDelay"` // milliseconds
	UseSearch  bool          `mapstructure:"useSearch"`
}

// PaymentsConfig holds the optional payment provider key
type PaymentsConfig struct {
	StripeSecretKey string `mapstructure:"stripeSecretKey"`
}

// Enabled reports whether a payment provider key was supplied
func (p PaymentsConfig) Enabled() bool {
	return p.StripeSecretKey != ""
}

// PredictionsConfig controls demo seeding
type PredictionsConfig struct {
	SeedOnStartup bool `mapstructure:"seedOnStartup"`
}

// RateLimitConfig bounds per-client calls to the generation routes
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requestsPerMinute"`
	Burst             int `mapstructure:"burst"`
}
