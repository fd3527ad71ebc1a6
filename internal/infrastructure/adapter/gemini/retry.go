package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// RetryConfig bounds how long and how often a generation call is attempted
type RetryConfig struct {
	AttemptTimeout time.Duration
	MaxRetries     int
	RetryInterval  time.Duration
}

// DefaultRetryConfig returns one retry with a 30s cap per attempt
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		AttemptTimeout: 30 * time.Second,
		MaxRetries:     1,
		RetryInterval:  500 * time.Millisecond,
	}
}

// isTransientError reports whether another attempt could succeed
func isTransientError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isRetryableStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isRetryableStatus(apiErrPtr.Code)
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// backoff doubles the base interval per attempt already made
func backoff(attempt int, base time.Duration) time.Duration {
	if attempt <= 0 || base <= 0 {
		return base
	}
	return base * time.Duration(1<<uint(attempt-1))
}
