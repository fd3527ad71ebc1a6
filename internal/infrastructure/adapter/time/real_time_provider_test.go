package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCTimeProvider(t *testing.T) {
	tp := NewUTCTimeProvider()

	t.Run("Now is UTC with microsecond precision", func(t *testing.T) {
		now := tp.Now()
		assert.Equal(t, time.UTC, now.Location())
		assert.Zero(t, now.Nanosecond()%1000)
	})

	t.Run("Since", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		assert.GreaterOrEqual(t, tp.Since(past), core.Minute)
	})

	t.Run("WithTimeout sets a deadline", func(t *testing.T) {
		ctx, cancel := tp.WithTimeout(context.Background(), 50*core.Millisecond)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
	})
}
