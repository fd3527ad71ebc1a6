package analyst

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// Pick is a fixture the analyst chose together with its verdict
type Pick struct {
	Fixture entity.Fixture
	Verdict entity.Verdict
}

// MatchAnalyst asks an external generative service for betting verdicts.
// Any failure, including a malformed answer, is reported as ErrGenerationFailed.
type MatchAnalyst interface {
	// AnalyzeMatch returns a verdict for a single fixture
	AnalyzeMatch(ctx context.Context, fixture entity.Fixture) (*entity.Verdict, error)

	// DailyPicks returns the analyst's best count picks for today
	DailyPicks(ctx context.Context, count int) ([]Pick, error)
}
