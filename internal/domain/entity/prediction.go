package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
)

// PredictionStatus represents the settlement state of a prediction
type PredictionStatus string

// PredictionStatus constants
const (
	StatusPending PredictionStatus = "pending"
	StatusWon     PredictionStatus = "won"
	StatusLost    PredictionStatus = "lost"
	StatusVoid    PredictionStatus = "void"
)

// Confidence bounds, in percent
const (
	MinConfidence = 0.0
	MaxConfidence = 100.0
)

// IsValidStatus checks if the status is one of the allowed values
func IsValidStatus(s PredictionStatus) bool {
	switch s {
	case StatusPending, StatusWon, StatusLost, StatusVoid:
		return true
	}
	return false
}

// Fixture identifies a match by its two sides and competition
type Fixture struct {
	HomeTeam string
	AwayTeam string
	League   string
}

// Validate checks that every side of the fixture is named
func (f Fixture) Validate() error {
	switch {
	case strings.TrimSpace(f.HomeTeam) == "":
		return fmt.Errorf("%w: home team is required", errs.ErrInvalidRequest)
	case strings.TrimSpace(f.AwayTeam) == "":
		return fmt.Errorf("%w: away team is required", errs.ErrInvalidRequest)
	case strings.TrimSpace(f.League) == "":
		return fmt.Errorf("%w: league is required", errs.ErrInvalidRequest)
	}
	return nil
}

// Normalize trims whitespace around every field
func (f Fixture) Normalize() Fixture {
	return Fixture{
		HomeTeam: strings.TrimSpace(f.HomeTeam),
		AwayTeam: strings.TrimSpace(f.AwayTeam),
		League:   strings.TrimSpace(f.League),
	}
}

// Verdict is the analysed part of a prediction: what to bet and why
type Verdict struct {
	Prediction string
	Odds       float64
	Confidence float64
	Analysis   string
	IsElite    bool
}

// Prediction is a tip on a single fixture
type Prediction struct {
	ID         string
	HomeTeam   string
	AwayTeam   string
	League     string
	StartTime  time.Time
	Prediction string  // outcome label, e.g. "Home Win"
	Odds       float64 // decimal payout multiple
	Confidence float64 // 0..100
	Analysis   string
	Status     PredictionStatus
	IsElite    bool
	CreatedAt  time.Time
}

// NewPrediction builds a pending prediction for a fixture kicking off at startTime
func NewPrediction(
	id string,
	fixture Fixture,
	verdict Verdict,
	startTime time.Time,
	timeProvider coreport.TimeProvider,
) (*Prediction, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", errs.ErrInvalidPrediction)
	}
	fixture = fixture.Normalize()

	p := &Prediction{
		ID:         id,
		HomeTeam:   fixture.HomeTeam,
		AwayTeam:   fixture.AwayTeam,
		League:     fixture.League,
		StartTime:  startTime,
		Prediction: strings.TrimSpace(verdict.Prediction),
		Odds:       verdict.Odds,
		Confidence: verdict.Confidence,
		Analysis:   strings.TrimSpace(verdict.Analysis),
		Status:     StatusPending,
		IsElite:    verdict.IsElite,
		CreatedAt:  timeProvider.Now(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Fixture returns the match this prediction is about
func (p *Prediction) Fixture() Fixture {
	return Fixture{HomeTeam: p.HomeTeam, AwayTeam: p.AwayTeam, League: p.League}
}

// Validate enforces the field constraints of a stored prediction
func (p *Prediction) Validate() error {
	if err := p.Fixture().Validate(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidPrediction, err)
	}
	if p.Prediction == "" {
		return fmt.Errorf("%w: outcome label is required", errs.ErrInvalidPrediction)
	}
	if !(p.Odds > 0) || math.IsInf(p.Odds, 1) {
		return fmt.Errorf("%w: odds must be positive, got %v", errs.ErrInvalidPrediction, p.Odds)
	}
	if !(p.Confidence >= MinConfidence && p.Confidence <= MaxConfidence) {
		return fmt.Errorf("%w: confidence must be within [0,100], got %v", errs.ErrInvalidPrediction, p.Confidence)
	}
	if !IsValidStatus(p.Status) {
		return fmt.Errorf("%w: unknown status %q", errs.ErrInvalidPrediction, p.Status)
	}
	return nil
}
