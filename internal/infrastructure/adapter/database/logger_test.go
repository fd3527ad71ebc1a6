package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/time"
)

func TestDatabaseLoggerTrace(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	coreLogger := applogger.NewFromZap(zap.New(obsCore), core.LogLevelDebug)
	dbLogger := NewDatabaseLogger(coreLogger, timeprovider.NewUTCTimeProvider(), "debug", 50*time.Millisecond)

	ctx := applogger.WithRequestID(context.Background(), "req-1")
	query := func() (string, int64) { return `SELECT * FROM "predictions" ORDER BY created_at desc`, 4 }

	t.Run("Regular query at debug", func(t *testing.T) {
		dbLogger.Trace(ctx, time.Now(), query, nil)

		entry := logs.TakeAll()
		require.Len(t, entry, 1)
		assert.Equal(t, "SQL Query", entry[0].Message)
		fields := entry[0].ContextMap()
		assert.Equal(t, "SELECT", fields["type"])
		assert.Equal(t, "predictions", fields["table"])
		assert.Equal(t, "req-1", fields["request_id"])
	})

	t.Run("Slow query warns", func(t *testing.T) {
		dbLogger.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		entry := logs.TakeAll()
		require.Len(t, entry, 1)
		assert.Equal(t, "Slow SQL Query", entry[0].Message)
	})

	t.Run("Errors are logged but not-found is not", func(t *testing.T) {
		dbLogger.Trace(ctx, time.Now(), query, errors.New("no such table"))
		dbLogger.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)

		entry := logs.TakeAll()
		require.Len(t, entry, 2)
		assert.Equal(t, "SQL Error", entry[0].Message)
		assert.Equal(t, "SQL Query", entry[1].Message)
	})

	t.Run("Silent mode", func(t *testing.T) {
		silent := NewDatabaseLogger(coreLogger, timeprovider.NewUTCTimeProvider(), "silent", 0)
		silent.Trace(ctx, time.Now(), query, errors.New("ignored"))
		assert.Equal(t, 0, logs.Len())
	})
}

func TestExtractHelpers(t *testing.T) {
	assert.Equal(t, "INSERT", extractQueryType("  insert into users values (1)"))
	assert.Equal(t, "", extractQueryType("VACUUM"))
	assert.Equal(t, "users", extractTableName(`INSERT INTO "users" ("id") VALUES ('x')`))
	assert.Equal(t, "predictions", extractTableName("UPDATE predictions SET odds = 2"))
	assert.Equal(t, "", extractTableName("PRAGMA foreign_keys"))
}
