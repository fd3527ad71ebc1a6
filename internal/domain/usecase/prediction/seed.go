package prediction

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// SeedDemoIfEmpty writes the demo rows into an empty store. Rows are
// upserted by fixed id, so a second run never duplicates them.
func (p *PredictionUseCase) SeedDemoIfEmpty(ctx context.Context) (bool, error) {
	count, err := p.predictionRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		p.logger.Debug("Predictions present, skipping demo seed", map[string]any{"count": count})
		return false, nil
	}

	demo := entity.DemoPredictions(p.timeProvider.Now())
	if err := p.predictionRepo.UpsertMany(ctx, demo); err != nil {
		return false, err
	}

	p.logger.Info("Demo predictions seeded", map[string]any{"count": len(demo)})
	return true, nil
}

// ReseedAdmin rewrites the admin demo rows regardless of what is stored
func (p *PredictionUseCase) ReseedAdmin(ctx context.Context) error {
	rows := entity.AdminSeedPredictions(p.timeProvider.Now())
	if err := p.predictionRepo.UpsertMany(ctx, rows); err != nil {
		return err
	}

	p.logger.Info("Admin predictions reseeded", map[string]any{"count": len(rows)})
	return nil
}
