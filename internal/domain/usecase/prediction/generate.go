package prediction

import (
	"context"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

// Generate asks the analyst about a fixture and stores the result as a
// pending prediction kicking off now. Nothing is written on failure.
func (p *PredictionUseCase) Generate(ctx context.Context, fixture entity.Fixture) (*entity.Prediction, error) {
	if err := fixture.Validate(); err != nil {
		return nil, err
	}
	fixture = fixture.Normalize()

	verdict, err := p.analyst.AnalyzeMatch(ctx, fixture)
	if err != nil {
		return nil, err
	}

	prediction, err := p.build(fixture, *verdict)
	if err != nil {
		return nil, err
	}

	if err := p.predictionRepo.Upsert(ctx, prediction); err != nil {
		p.logger.Error("Failed to store generated prediction", map[string]any{
			"prediction_id": prediction.ID,
			"error":         err,
		})
		return nil, err
	}

	p.logger.Info("Prediction generated", map[string]any{
		"prediction_id": prediction.ID,
		"home_team":     prediction.HomeTeam,
		"away_team":     prediction.AwayTeam,
		"league":        prediction.League,
		"is_elite":      prediction.IsElite,
	})
	return prediction, nil
}

// build turns an analyst verdict into a pending prediction. A verdict that
// breaks the prediction's constraints counts as a failed generation.
func (p *PredictionUseCase) build(fixture entity.Fixture, verdict entity.Verdict) (*entity.Prediction, error) {
	id, err := p.newID()
	if err != nil {
		return nil, err
	}

	prediction, err := entity.NewPrediction(id, fixture, verdict, p.timeProvider.Now(), p.timeProvider)
	if err != nil {
		return nil, errs.NewGenerationError(fixture.HomeTeam, fixture.AwayTeam, fixture.League, "verdict rejected", err)
	}
	return prediction, nil
}

// GenerateDailySlip asks the analyst for today's top picks, stores them in
// one transaction and combines them into a bet slip
func (p *PredictionUseCase) GenerateDailySlip(ctx context.Context) (*entity.BetSlip, error) {
	picks, err := p.analyst.DailyPicks(ctx, usecase.DailySlipSize)
	if err != nil {
		return nil, err
	}

	predictions := make([]entity.Prediction, 0, len(picks))
	for _, pick := range picks {
		prediction, err := p.build(pick.Fixture, pick.Verdict)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, *prediction)
	}

	if err := p.predictionRepo.UpsertMany(ctx, predictions); err != nil {
		p.logger.Error("Failed to store daily picks", map[string]any{
			"count": len(predictions),
			"error": err,
		})
		return nil, err
	}

	slip, err := p.newSlip(predictions)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Daily bet slip generated", map[string]any{
		"slip_id":    slip.ID,
		"matches":    len(slip.Matches),
		"total_odds": slip.TotalOdds,
	})
	return slip, nil
}

func (p *PredictionUseCase) newSlip(predictions []entity.Prediction) (*entity.BetSlip, error) {
	id, err := p.newID()
	if err != nil {
		return nil, err
	}
	return entity.NewBetSlip(id, predictions, p.timeProvider.Now())
}

// EliteSlip combines every stored elite prediction into a bet slip
func (p *PredictionUseCase) EliteSlip(ctx context.Context) (*entity.BetSlip, error) {
	elites, err := p.predictionRepo.ListElite(ctx)
	if err != nil {
		return nil, err
	}
	if len(elites) == 0 {
		return nil, errs.ErrNoPredictions
	}
	return p.newSlip(elites)
}
