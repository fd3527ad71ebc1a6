package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warn":    core.LogLevelWarn,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestZapLoggerLevels(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(obsCore), core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("visible", map[string]any{"user_id": "abc"})
	l.Warn("careful", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "visible", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["user_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("suppressed", nil)
	l.Error("failed", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 3, logs.Len())
	last := logs.All()[2]
	assert.Equal(t, "failed", last.Message)
	assert.Equal(t, "boom", last.ContextMap()["error"])
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(true, Options{Level: "warn", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	_, err = NewZapLogger(false, Options{Output: "/nonexistent-dir/x/y.log"})
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Info("ignored", map[string]any{"k": "v"})
	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	assert.NoError(t, l.Flush())
}
