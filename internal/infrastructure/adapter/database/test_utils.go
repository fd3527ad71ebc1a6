package database

import (
	"context"
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/time"
)

var (
	unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
	testDBCounter   atomic.Int64
)

// TestDBManager provides a migrated in-memory SQLite database per test
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// TestConfig returns a configuration for a private in-memory database
func TestConfig(name string) *Config {
	n := testDBCounter.Add(1)
	return &Config{
		Driver:        DriverSQLite,
		Path:          fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", unsafeNameChars.ReplaceAllString(name, "_"), n),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 0,
	}
}

// NewTestDBManager connects and migrates a fresh database, closed on cleanup
func NewTestDBManager(t *testing.T) *TestDBManager {
	t.Helper()

	log := logger.NewNoopLogger()
	tp := timeprovider.NewUTCTimeProvider()
	config := TestConfig(t.Name())

	manager := NewManager(config, log, tp)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: tp,
	}
}

// TruncateAllTables empties every domain table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"predictions", "users"} {
		if err := m.Manager.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
