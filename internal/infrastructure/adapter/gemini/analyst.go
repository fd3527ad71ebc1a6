package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/analyst"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

// dailyLeague labels generation errors that are not about one fixture
const dailyLeague = "daily picks"

// ErrMissingAPIKey is returned when the analyst is built without credentials
var ErrMissingAPIKey = errors.New("gemini api key is required")

// contentGenerator is the slice of *genai.Models the analyst calls
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures the analyst
type Config struct {
	APIKey    string
	Model     string
	UseSearch bool
	Retry     RetryConfig
}

// Analyst implements the MatchAnalyst port on the Gemini API
type Analyst struct {
	models    contentGenerator
	model     string
	useSearch bool
	retry     RetryConfig
	decoder   *decoder
	logger    coreport.Logger
}

// NewAnalyst creates a Gemini client and wraps it
func NewAnalyst(ctx context.Context, cfg Config, logger coreport.Logger) (*Analyst, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newAnalyst(client.Models, cfg, logger), nil
}

func newAnalyst(models contentGenerator, cfg Config, logger coreport.Logger) *Analyst {
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}
	if cfg.Retry.AttemptTimeout <= 0 {
		cfg.Retry.AttemptTimeout = DefaultRetryConfig().AttemptTimeout
	}
	if cfg.Retry.MaxRetries < 0 {
		cfg.Retry.MaxRetries = 0
	}

	return &Analyst{
		models:    models,
		model:     cfg.Model,
		useSearch: cfg.UseSearch,
		retry:     cfg.Retry,
		decoder:   newDecoder(),
		logger:    logger,
	}
}

// AnalyzeMatch asks the model for a verdict on one fixture
func (a *Analyst) AnalyzeMatch(ctx context.Context, fixture entity.Fixture) (*entity.Verdict, error) {
	text, err := a.generate(ctx, "analyze_match", matchPrompt(fixture), verdictSchema())
	if err != nil {
		return nil, errs.NewGenerationError(fixture.HomeTeam, fixture.AwayTeam, fixture.League, "request failed", err)
	}

	verdict, err := a.decoder.decodeVerdict(text)
	if err != nil {
		a.logger.Warn("Analyst returned an unusable verdict", map[string]any{
			"home_team": fixture.HomeTeam,
			"away_team": fixture.AwayTeam,
			"error":     err,
		})
		return nil, errs.NewGenerationError(fixture.HomeTeam, fixture.AwayTeam, fixture.League, "malformed response", err)
	}
	return verdict, nil
}

// DailyPicks asks the model for today's strongest count picks
func (a *Analyst) DailyPicks(ctx context.Context, count int) ([]analyst.Pick, error) {
	if count <= 0 {
		return nil, errs.NewGenerationError("", "", dailyLeague, "invalid pick count", errs.ErrInvalidRequest)
	}

	text, err := a.generate(ctx, "daily_picks", dailyPrompt(count), pickListSchema())
	if err != nil {
		return nil, errs.NewGenerationError("", "", dailyLeague, "request failed", err)
	}

	picks, err := a.decoder.decodePicks(text, count)
	if err != nil {
		a.logger.Warn("Analyst returned unusable picks", map[string]any{"error": err})
		return nil, errs.NewGenerationError("", "", dailyLeague, "malformed response", err)
	}
	return picks, nil
}

func (a *Analyst) config(schema *genai.Schema) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if a.useSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

// generate runs the request with a per-attempt timeout, retrying transient failures
func (a *Analyst) generate(ctx context.Context, operation, prompt string, schema *genai.Schema) (string, error) {
	contents := genai.Text(prompt)
	cfg := a.config(schema)

	var lastErr error
	for attempt := 0; attempt <= a.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := backoff(attempt, a.retry.RetryInterval)
			a.logger.Warn("Transient generation error, retrying", map[string]any{
				"operation":   operation,
				"attempt":     attempt + 1,
				"max_retries": a.retry.MaxRetries,
				"error":       lastErr,
				"retry_after": wait.String(),
			})
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := a.attempt(ctx, contents, cfg)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// The caller's own deadline is not worth another attempt
		if ctx.Err() != nil || !isTransientError(err) {
			break
		}
	}

	a.logger.Error("Generation failed", map[string]any{
		"operation": operation,
		"model":     a.model,
		"error":     lastErr,
	})
	return "", lastErr
}

func (a *Analyst) attempt(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, a.retry.AttemptTimeout)
	defer cancel()

	resp, err := a.models.GenerateContent(attemptCtx, a.model, contents, cfg)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", errMalformed)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: response carried no text", errMalformed)
	}
	return text, nil
}
