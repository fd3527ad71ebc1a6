package dto

import (
	"time"

	"github.com/amirhossein-jamali/nerdytips/internal/domain/entity"
)

// GenerateRequest names the fixture to analyse
type GenerateRequest struct {
	Home   string `json:"home" binding:"required"`
	Away   string `json:"away" binding:"required"`
	League string `json:"league" binding:"required"`
}

// Fixture converts the request to the domain fixture
func (r GenerateRequest) Fixture() entity.Fixture {
	return entity.Fixture{HomeTeam: r.Home, AwayTeam: r.Away, League: r.League}
}

// PredictionResponse is a prediction as the client sees it
type PredictionResponse struct {
	ID         string    `json:"id"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	League     string    `json:"league"`
	StartTime  time.Time `json:"startTime"`
	Prediction string    `json:"prediction"`
	Odds       float64   `json:"odds"`
	Confidence float64   `json:"confidence"`
	Analysis   string    `json:"analysis"`
	Status     string    `json:"status"`
	IsElite    bool      `json:"isElite"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BetSlipResponse is an accumulator as the client sees it
type BetSlipResponse struct {
	ID         string               `json:"id"`
	Matches    []PredictionResponse `json:"matches"`
	TotalOdds  float64              `json:"totalOdds"`
	Confidence float64              `json:"confidence"`
	Date       time.Time            `json:"date"`
}

// NewPredictionResponse converts a single prediction
func NewPredictionResponse(p *entity.Prediction) PredictionResponse {
	return PredictionResponse{
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

// NewPredictionList converts a listing; an empty listing encodes as []
func NewPredictionList(predictions []entity.Prediction) []PredictionResponse {
	out := make([]PredictionResponse, 0, len(predictions))
	for i := range predictions {
		out = append(out, NewPredictionResponse(&predictions[i]))
	}
	return out
}

// NewBetSlipResponse converts a bet slip
func NewBetSlipResponse(s *entity.BetSlip) BetSlipResponse {
	return BetSlipResponse{
		ID:         s.ID,
		Matches:    NewPredictionList(s.Matches),
		TotalOdds:  s.TotalOdds,
		Confidence: s.Confidence,
		Date:       s.Date,
	}
}
