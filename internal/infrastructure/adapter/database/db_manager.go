package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/database/migration"
)

var (
	// ErrNotConnected is returned when the manager is used before Connect
	ErrNotConnected = errors.New("database not connected")

	// ErrClosed is returned when the manager is used after Close
	ErrClosed = errors.New("database closed")
)

// Manager owns the database handle for the lifetime of the process.
// Repositories receive the handle from it instead of opening their own.
type Manager struct {
	mu                sync.RWMutex
	config            *Config
	db                *gorm.DB
	closed            bool
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying failed attempts, and configures the pool
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", m.config.Redacted())

	attempts := m.config.RetryAttempts + 1
	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			m.timeProvider.Sleep(coreport.Duration(m.config.RetryDelay))
		}

		gormDB, err = m.open()
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	// An in-memory database vanishes with its last connection
	if !m.config.IsInMemory() {
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	}

	m.mu.Lock()
	m.db = gormDB
	m.closed = false
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.mu.Unlock()

	fields := m.config.Redacted()
	fields["max_open_conns"] = m.config.MaxOpenConns
	fields["query_timeout"] = m.config.QueryTimeout.String()
	m.logger.Info("Successfully connected to database", fields)

	if m.config.MonitorInterval > 0 {
		monitor := NewConnectionPoolMonitor(m, m.logger)
		if err := monitor.Start(m.config.MonitorInterval); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
		} else {
			m.mu.Lock()
			m.connectionMonitor = monitor
			m.mu.Unlock()
		}
	}

	return gormDB, nil
}

func (m *Manager) open() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:  NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: m.timeProvider.Now,
	}

	switch m.config.Driver {
	case DriverSQLite:
		return gorm.Open(sqlite.Open(m.config.DSN()), gormConfig)
	case DriverPostgres:
		gormConfig.PrepareStmt = true
		return gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if _, err := m.Conn(); err != nil {
		return err
	}
	return m.MigrationManager().MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	db, err := m.Conn()
	if err != nil {
		return err
	}
	return m.ping(ctx, db)
}

// Conn returns the open handle, or ErrNotConnected before Connect and
// ErrClosed after Close
func (m *Manager) Conn() (*gorm.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case m.db == nil:
		return nil, ErrNotConnected
	case m.closed:
		return nil, ErrClosed
	}
	return m.db, nil
}

// DB returns the GORM database instance, nil before Connect
func (m *Manager) DB() *gorm.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

// Close stops monitoring and closes the database connection. The handle is
// kept so calls racing with Close fail with the driver's closed error.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil || m.closed {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
		m.connectionMonitor = nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	m.closed = true
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// ErrorMapper returns the error mapper
func (m *Manager) ErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// PoolMetrics returns the last collected pool metrics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	m.mu.RLock()
	monitor := m.connectionMonitor
	m.mu.RUnlock()

	if monitor == nil {
		return ConnectionPoolMetrics{}
	}
	return monitor.GetMetrics()
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.migrationMgr
}
