package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeDuplicateEmail     = 4001
	CodeInvalidCredentials = 4002
	CodeInvalidRequest     = 4003
	CodeInvalidPrediction  = 4005
	CodeUnauthorized       = 4010
	CodeUserNotFound       = 4040
	CodeNoPredictions      = 4041
	CodeRateLimited        = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGenerationFailed   = 5001
	CodePersistenceFailure = 5002
)

// Base error types
var (
	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a session token is missing, malformed or expired
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGenerationFailed is returned when the prediction service fails or answers garbage
	ErrGenerationFailed = errors.New("failed to generate prediction")

	// ErrPersistence is returned for store-level failures
	ErrPersistence = errors.New("persistence failure")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNoPredictions is returned when a bet slip is requested over an empty selection
	ErrNoPredictions = errors.New("no predictions available")

	// ErrInvalidTier marks a stored subscription tier outside the known set
	ErrInvalidTier = errors.New("invalid subscription tier")

	// ErrInvalidPrediction is returned when a prediction violates its field constraints
	ErrInvalidPrediction = errors.New("invalid prediction")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidPrediction):
		return CodeInvalidPrediction
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrNoPredictions):
		return CodeNoPredictions
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	case errors.Is(err, ErrPersistence):
		return CodePersistenceFailure
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code the API answers with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidPrediction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNoPredictions):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// publicMessages holds the one-line texts the API answers with
var publicMessages = []struct {
	err     error
	message string
}{
	{ErrDuplicateEmail, "Email already exists"},
	{ErrInvalidCredentials, "Invalid credentials"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrGenerationFailed, "Failed to generate prediction"},
	{ErrPersistence, "Database error"},
	{ErrDatabaseConnection, "Database error"},
	{ErrUserNotFound, "User not found"},
	{ErrNoPredictions, "No predictions available"},
	{ErrRateLimited, "Too many requests"},
}

// PublicMessage returns the one-line message safe to show to API clients.
// Server-side failures never leak their cause.
func PublicMessage(err error) string {
	for _, pm := range publicMessages {
		if errors.Is(err, pm.err) {
			return pm.message
		}
	}
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrInvalidPrediction) {
		return err.Error()
	}
	return "Internal server error"
}

// GenerationError describes a failed prediction request against the AI service
type GenerationError struct {
	HomeTeam string
	AwayTeam string
	League   string
	Reason   string
	Err      error
}

// Error implements the error interface for GenerationError
func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed for %s vs %s (%s): %s",
			e.HomeTeam, e.AwayTeam, e.League, e.Reason)
	}
	return fmt.Sprintf("generation failed for %s vs %s (%s): %s - %v",
		e.HomeTeam, e.AwayTeam, e.League, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports every GenerationError as ErrGenerationFailed
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// LogFields returns a map of fields for structured logging
func (e *GenerationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "generation_error",
		"home_team":  e.HomeTeam,
		"away_team":  e.AwayTeam,
		"league":     e.League,
		"reason":     e.Reason,
		"error_code": CodeGenerationFailed,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewGenerationError creates a detailed generation error
func NewGenerationError(home, away, league, reason string, err error) error {
	return &GenerationError{
		HomeTeam: home,
		AwayTeam: away,
		League:   league,
		Reason:   reason,
		Err:      err,
	}
}

// PersistenceError wraps a store failure with the operation that hit it
type PersistenceError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s on %s: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports every PersistenceError as ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_error",
		"operation":  e.Operation,
		"entity":     e.Entity,
		"error":      e.Err.Error(),
		"error_code": CodePersistenceFailure,
	}
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(operation, entity string, err error) error {
	return &PersistenceError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// IsDuplicateEmailError checks if the error is a duplicate email error
func IsDuplicateEmailError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// IsGenerationError checks if the error is a generation failure
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}

// IsPersistenceError checks if the error is a store-level failure
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
