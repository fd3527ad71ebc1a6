package repository

import (
	"fmt"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/model"
)

// userToModel converts a user entity to its database model
func userToModel(user *entity.User) *model.User {
	return &model.User{
		ID:                   user.ID,
		Email:                user.Email,
		PasswordHash:         user.PasswordHash,
		Tier:                 string(user.Tier),
		PredictionsRemaining: user.PredictionsRemaining,
		SubscriptionEnd:      user.SubscriptionEnd,
		CreatedAt:            user.CreatedAt,
	}
}

// userToEntity converts a user model to an entity. A tier outside the known
// set means the row was written by something else and is not served.
func userToEntity(m *model.User) (*entity.User, error) {
	tier := entity.Tier(m.Tier)
	if !entity.IsValidTier(tier) {
		return nil, fmt.Errorf("%w: %q for user %s", errs.ErrInvalidTier, m.Tier, m.ID)
	}
	return &entity.User{
		ID:                   m.ID,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		Tier:                 tier,
		PredictionsRemaining: m.PredictionsRemaining,
		SubscriptionEnd:      m.SubscriptionEnd,
		CreatedAt:            m.CreatedAt,
	}, nil
}

func predictionToModel(p *entity.Prediction) *model.Prediction {
	return &model.Prediction{
		ID:         p.ID,
		HomeTeam:   p.HomeTeam,
		AwayTeam:   p.AwayTeam,
		League:     p.League,
		StartTime:  p.StartTime,
		Prediction: p.Prediction,
		Odds:       p.Odds,
		Confidence: p.Confidence,
		Analysis:   p.Analysis,
		Status:     string(p.Status),
		IsElite:    p.IsElite,
		CreatedAt:  p.CreatedAt,
	}
}

func predictionToEntity(m *model.Prediction) entity.Prediction {
	return entity.Prediction{
		ID:         m.ID,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		League:     m.League,
		StartTime:  m.StartTime.UTC(),
		Prediction: m.Prediction,
		Odds:       m.Odds,
		Confidence: m.Confidence,
		Analysis:   m.Analysis,
		Status:     entity.PredictionStatus(m.Status),
		IsElite:    m.IsElite,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
