package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

// UTCTimeProvider implements core.TimeProvider on the wall clock.
// Every instant it hands out is in UTC so stored timestamps compare
// the same way on SQLite and Postgres.
type UTCTimeProvider struct{}

// NewUTCTimeProvider creates a wall clock time provider
func NewUTCTimeProvider() core.TimeProvider {
	return UTCTimeProvider{}
}

// Now returns the current time in UTC, truncated to microseconds
func (UTCTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Since returns the time elapsed since t
func (UTCTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep pauses the current goroutine
func (UTCTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout derives a context canceled after timeout
func (UTCTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
