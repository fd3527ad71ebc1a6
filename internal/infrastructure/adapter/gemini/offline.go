package gemini

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/analyst"
)

// OfflineAnalyst stands in when no API key is configured.
// Every call fails with ErrGenerationFailed so reads keep working.
type OfflineAnalyst struct{}

var _ analyst.MatchAnalyst = OfflineAnalyst{}

// AnalyzeMatch always fails
func (OfflineAnalyst) AnalyzeMatch(_ context.Context, fixture entity.Fixture) (*entity.Verdict, error) {
	return nil, errs.NewGenerationError(fixture.HomeTeam, fixture.AwayTeam, fixture.League, "analyst not configured", ErrMissingAPIKey)
}

// DailyPicks always fails
func (OfflineAnalyst) DailyPicks(context.Context, int) ([]analyst.Pick, error) {
	return nil, errs.NewGenerationError("", "", dailyLeague, "analyst not configured", ErrMissingAPIKey)
}
