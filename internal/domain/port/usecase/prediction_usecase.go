package usecase

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// DailySlipSize is the number of picks in a generated daily bet slip
const DailySlipSize = 3

// PredictionUseCase defines prediction reads, generation and seeding
type PredictionUseCase interface {
	// ListAll returns every prediction, newest first. Pure read.
	ListAll(ctx context.Context) ([]entity.Prediction, error)

	// ListElite returns elite predictions, newest first
	ListElite(ctx context.Context) ([]entity.Prediction, error)

	// Generate asks the analyst about a fixture and stores the result.
	// Nothing is written unless the analyst answers with a valid verdict.
	Generate(ctx context.Context, fixture entity.Fixture) (*entity.Prediction, error)

	// GenerateDailySlip asks the analyst for today's top picks, stores them
	// all together and combines them into a bet slip
	GenerateDailySlip(ctx context.Context) (*entity.BetSlip, error)

	// EliteSlip combines the stored elite predictions into a bet slip
	EliteSlip(ctx context.Context) (*entity.BetSlip, error)

	// SeedDemoIfEmpty writes the four demo rows when no prediction exists.
	// Reports whether anything was written.
	SeedDemoIfEmpty(ctx context.Context) (bool, error)

	// ReseedAdmin rewrites the three admin demo rows
	ReseedAdmin(ctx context.Context) error
}
