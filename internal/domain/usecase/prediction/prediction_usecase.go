package prediction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/analyst"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
)

var _ usecase.PredictionUseCase = (*PredictionUseCase)(nil)

// PredictionUseCase handles prediction reads, generation and demo seeding
type PredictionUseCase struct {
	predictionRepo persistence.PredictionRepository
	analyst        analyst.MatchAnalyst
	idGenerator    coreport.IDGenerator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewPredictionUseCase creates a new PredictionUseCase
func NewPredictionUseCase(
	predictionRepo persistence.PredictionRepository,
	matchAnalyst analyst.MatchAnalyst,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PredictionUseCase {
	return &PredictionUseCase{
		predictionRepo: predictionRepo,
		analyst:        matchAnalyst,
		idGenerator:    idGenerator,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// ListAll returns every prediction, newest first
func (p *PredictionUseCase) ListAll(ctx context.Context) ([]entity.Prediction, error) {
	return p.predictionRepo.ListAll(ctx)
}

// ListElite returns elite predictions, newest first
func (p *PredictionUseCase) ListElite(ctx context.Context) ([]entity.Prediction, error) {
	return p.predictionRepo.ListElite(ctx)
}

func (p *PredictionUseCase) newID() (string, error) {
	id, err := p.idGenerator.NewID()
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate id: %s", errs.ErrInternalServer, err.Error())
	}
	return id, nil
}
