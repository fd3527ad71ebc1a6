package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/logger"
)

type fakeReply struct {
	text  string
	err   error
	block bool
}

// fakeGenerator answers GenerateContent from a scripted list of replies
type fakeGenerator struct {
	mu      sync.Mutex
	replies []fakeReply
	calls   int
	configs []*genai.GenerateContentConfig
	prompts []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, _ string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	reply := f.replies[min(f.calls, len(f.replies)-1)]
	f.calls++
	f.configs = append(f.configs, config)
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompts = append(f.prompts, contents[0].Parts[0].Text)
	}
	f.mu.Unlock()

	if reply.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if reply.err != nil {
		return nil, reply.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(reply.text, genai.RoleModel)}},
	}, nil
}

func newTestAnalyst(gen *fakeGenerator, retries int) *Analyst {
	return newAnalyst(gen, Config{
		Model:     "test-model",
		UseSearch: true,
		Retry: RetryConfig{
			AttemptTimeout: 50 * time.Millisecond,
			MaxRetries:     retries,
			RetryInterval:  time.Millisecond,
		},
	}, logger.NewNoopLogger())
}

var fixture = entity.Fixture{HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League"}

const validVerdict = `{"prediction":"Home Win","odds":1.9,"confidence":74,"analysis":"Arsenal unbeaten at home.","isElite":false}`

func TestAnalyzeMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid verdict", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: validVerdict}}}
		verdict, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
		require.NoError(t, err)

		assert.Equal(t, "Home Win", verdict.Prediction)
		assert.InDelta(t, 1.9, verdict.Odds, 1e-9)
		assert.InDelta(t, 74.0, verdict.Confidence, 1e-9)
		assert.False(t, verdict.IsElite)

		require.Len(t, gen.configs, 1)
		cfg := gen.configs[0]
		assert.Equal(t, "application/json", cfg.ResponseMIMEType)
		require.NotNil(t, cfg.ResponseSchema)
		assert.Equal(t, genai.TypeObject, cfg.ResponseSchema.Type)
		assert.ElementsMatch(t, verdictRequired, cfg.ResponseSchema.Required)
		require.Len(t, cfg.Tools, 1)
		assert.NotNil(t, cfg.Tools[0].GoogleSearch)
		assert.Contains(t, gen.prompts[0], "Arsenal and Chelsea in the Premier League")
	})

	t.Run("Search can be disabled", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: validVerdict}}}
		a := newTestAnalyst(gen, 0)
		a.useSearch = false

		_, err := a.AnalyzeMatch(ctx, fixture)
		require.NoError(t, err)
		assert.Empty(t, gen.configs[0].Tools)
	})

	t.Run("Malformed answers are generation errors", func(t *testing.T) {
		cases := map[string]string{
			"not json":        "I think Arsenal will win",
			"empty object":    "{}",
			"missing isElite": `{"prediction":"Home Win","odds":1.9,"confidence":74,"analysis":"x"}`,
			"string odds":     `{"prediction":"Home Win","odds":"1.9","confidence":74,"analysis":"x","isElite":true}`,
			"zero odds":       `{"prediction":"Home Win","odds":0,"confidence":74,"analysis":"x","isElite":true}`,
			"negative odds":   `{"prediction":"Home Win","odds":-1.5,"confidence":74,"analysis":"x","isElite":true}`,
			"confidence 101":  `{"prediction":"Home Win","odds":1.9,"confidence":101,"analysis":"x","isElite":true}`,
			"blank label":     `{"prediction":"  ","odds":1.9,"confidence":74,"analysis":"x","isElite":true}`,
			"unknown field":   `{"prediction":"Home Win","odds":1.9,"confidence":74,"analysis":"x","isElite":true,"stake":10}`,
			"trailing data":   validVerdict + `{}`,
		}
		for name, text := range cases {
			t.Run(name, func(t *testing.T) {
				gen := &fakeGenerator{replies: []fakeReply{{text: text}}}
				_, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrGenerationFailed)
				assert.True(t, errs.IsGenerationError(err))
				// Malformed output is not retried
				assert.Equal(t, 1, gen.calls)
			})
		}
	})

	t.Run("Any positive odds are accepted", func(t *testing.T) {
		for _, odds := range []string{"1", "1.0", "0.5"} {
			text := `{"prediction":"Home Win","odds":` + odds + `,"confidence":74,"analysis":"x","isElite":false}`
			gen := &fakeGenerator{replies: []fakeReply{{text: text}}}
			verdict, err := newTestAnalyst(gen, 0).AnalyzeMatch(ctx, fixture)
			require.NoError(t, err, odds)
			assert.Greater(t, verdict.Odds, 0.0)
		}
	})

	t.Run("Fenced JSON is accepted", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: "```json\n" + validVerdict + "\n```"}}}
		_, err := newTestAnalyst(gen, 0).AnalyzeMatch(ctx, fixture)
		assert.NoError(t, err)
	})

	t.Run("Empty text is a failure", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: ""}}}
		_, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
	})

	t.Run("Transient error is retried once", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{
			{err: genai.APIError{Code: http.StatusServiceUnavailable, Message: "overloaded"}},
			{text: validVerdict},
		}}
		verdict, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
		require.NoError(t, err)
		assert.Equal(t, "Home Win", verdict.Prediction)
		assert.Equal(t, 2, gen.calls)
	})

	t.Run("Retries are bounded", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{
			{err: genai.APIError{Code: http.StatusTooManyRequests}},
		}}
		_, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.Equal(t, 2, gen.calls)
	})

	t.Run("Client errors are not retried", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{
			{err: genai.APIError{Code: http.StatusBadRequest, Message: "bad schema"}},
		}}
		_, err := newTestAnalyst(gen, 3).AnalyzeMatch(ctx, fixture)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("Hanging attempt times out and is retried", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{block: true}, {text: validVerdict}}}
		start := time.Now()
		_, err := newTestAnalyst(gen, 1).AnalyzeMatch(ctx, fixture)
		require.NoError(t, err)
		assert.Equal(t, 2, gen.calls)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("Caller cancellation stops retries", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{block: true}}}
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newTestAnalyst(gen, 3).AnalyzeMatch(cctx, fixture)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, gen.calls)
	})
}

func TestDailyPicks(t *testing.T) {
	ctx := context.Background()
	threePicks := `[
		{"homeTeam":"Arsenal","awayTeam":"Chelsea","league":"Premier League","prediction":"Home Win","odds":1.8,"confidence":80,"analysis":"a","isElite":true},
		{"homeTeam":"Inter","awayTeam":"Milan","league":"Serie A","prediction":"BTTS - Yes","odds":1.7,"confidence":76,"analysis":"b","isElite":false},
		{"homeTeam":" PSG ","awayTeam":"Lyon","league":"Ligue 1","prediction":"Over 2.5","odds":1.5,"confidence":84,"analysis":"c","isElite":true}
	]`

	t.Run("Valid picks", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: threePicks}}}
		picks, err := newTestAnalyst(gen, 0).DailyPicks(ctx, 3)
		require.NoError(t, err)
		require.Len(t, picks, 3)

		assert.Equal(t, "PSG", picks[2].Fixture.HomeTeam)
		assert.Equal(t, "Serie A", picks[1].Fixture.League)
		assert.True(t, picks[0].Verdict.IsElite)
		assert.Equal(t, genai.TypeArray, gen.configs[0].ResponseSchema.Type)
		assert.Contains(t, gen.prompts[0], "top 3 highest confidence")
	})

	t.Run("Extra picks are dropped", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: threePicks}}}
		picks, err := newTestAnalyst(gen, 0).DailyPicks(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, picks, 2)
	})

	t.Run("Empty or invalid lists fail", func(t *testing.T) {
		for _, text := range []string{
			"[]",
			`{"homeTeam":"Arsenal"}`,
			`[{"homeTeam":"Arsenal","awayTeam":"","league":"EPL","prediction":"Home Win","odds":1.8,"confidence":80,"analysis":"a","isElite":true}]`,
		} {
			gen := &fakeGenerator{replies: []fakeReply{{text: text}}}
			_, err := newTestAnalyst(gen, 0).DailyPicks(ctx, 3)
			assert.ErrorIs(t, err, errs.ErrGenerationFailed, text)
		}
	})

	t.Run("Non-positive count", func(t *testing.T) {
		gen := &fakeGenerator{replies: []fakeReply{{text: threePicks}}}
		_, err := newTestAnalyst(gen, 0).DailyPicks(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.Equal(t, 0, gen.calls)
	})
}

func TestIsTransientError(t *testing.T) {
	assert.False(t, isTransientError(nil))
	assert.False(t, isTransientError(context.Canceled))
	assert.True(t, isTransientError(context.DeadlineExceeded))
	assert.True(t, isTransientError(genai.APIError{Code: 500}))
	assert.True(t, isTransientError(&genai.APIError{Code: 429}))
	assert.False(t, isTransientError(genai.APIError{Code: 403}))
	assert.False(t, isTransientError(errors.New("boom")))
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, backoff(1, 100*time.Millisecond))
	assert.Equal(t, 200*time.Millisecond, backoff(2, 100*time.Millisecond))
	assert.Equal(t, time.Duration(0), backoff(3, 0))
}

func TestNewAnalystRequiresKey(t *testing.T) {
	_, err := NewAnalyst(context.Background(), Config{}, logger.NewNoopLogger())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestOfflineAnalyst(t *testing.T) {
	ctx := context.Background()

	verdict, err := OfflineAnalyst{}.AnalyzeMatch(ctx, entity.Fixture{HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League"})
	assert.Nil(t, verdict)
	assert.ErrorIs(t, err, errs.ErrGenerationFailed)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	picks, err := OfflineAnalyst{}.DailyPicks(ctx, 3)
	assert.Nil(t, picks)
	assert.ErrorIs(t, err, errs.ErrGenerationFailed)
}
