package entity

import (
	"fmt"
	"math"
	"time"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
)

// BetSlip is an accumulator over several predictions
type BetSlip struct {
	ID         string
	Matches    []Prediction
	TotalOdds  float64 // product of the match odds, two decimals
	Confidence float64 // mean of the match confidences, one decimal
	Date       time.Time
}

// NewBetSlip combines predictions into an accumulator dated at date
func NewBetSlip(id string, matches []Prediction, date time.Time) (*BetSlip, error) {
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: a bet slip needs at least one match", errs.ErrInvalidRequest)
	}

	totalOdds := 1.0
	confidenceSum := 0.0
	for _, m := range matches {
		totalOdds *= m.Odds
		confidenceSum += m.Confidence
	}

	return &BetSlip{
		ID:         id,
		Matches:    matches,
		TotalOdds:  round(totalOdds, 2),
		Confidence: round(confidenceSum/float64(len(matches)), 1),
		Date:       date,
	}, nil
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
