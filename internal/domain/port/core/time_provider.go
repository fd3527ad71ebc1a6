package core

import (
	"context"
	"time"
)

// Duration is a time.Duration the domain can pass without importing time
type Duration time.Duration

const (
	Millisecond = Duration(time.Millisecond)
	Minute      = Duration(time.Minute)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock every timestamp and deadline is taken from
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Sleep(d Duration)
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
