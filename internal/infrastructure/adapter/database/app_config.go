package database

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/config"
)

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	db := conf.Database
	dbConf := &Config{
		Driver:          db.Driver,
		Path:            db.Path,
		Host:            db.Host,
		Port:            ParsePort(db.Port),
		Username:        db.Username,
		Password:        db.Password,
		Database:        db.Database,
		SSLMode:         db.SSLMode,
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
		ConnMaxIdleTime: db.ConnMaxIdleTime,
		QueryTimeout:    db.QueryTimeout,
		SlowThreshold:   db.SlowThreshold,
		LogLevel:        conf.Logger.Level,
		RetryAttempts:   db.RetryAttempts,
		RetryDelay:      db.RetryDelay,
		MonitorInterval: 30 * time.Second,
	}

	if dbConf.Driver == "" {
		dbConf.Driver = DriverSQLite
	}
	// SQLite allows a single writer; one connection keeps requests queued
	// in the pool rather than failing on the file lock
	if dbConf.Driver == DriverSQLite {
		dbConf.MaxOpenConns = 1
		dbConf.MaxIdleConns = 1
	}
	return dbConf
}

// ParsePort converts a port string to an int, 0 when invalid
func ParsePort(port string) int {
	var p int
	if _, err := fmt.Sscanf(port, "%d", &p); err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
