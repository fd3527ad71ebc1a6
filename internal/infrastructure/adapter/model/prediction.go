package model

import (
	"time"
)

// Prediction represents the database model for predictions
type Prediction struct {
	ID         string    `gorm:"primaryKey;type:varchar(32)"`
	HomeTeam   string    `gorm:"type:varchar(128);not null"`
	AwayTeam   string    `gorm:"type:varchar(128);not null"`
	League     string    `gorm:"type:varchar(128);not null"`
	StartTime  time.Time `gorm:"not null"`
	Prediction string    `gorm:"type:varchar(128);not null"`
	Odds       float64   `gorm:"not null"`
	Confidence float64   `gorm:"not null"`
	Analysis   string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(16);not null"`
	IsElite    bool      `gorm:"not null;index:idx_predictions_is_elite"`
	CreatedAt  time.Time `gorm:"not null;index:idx_predictions_created_at"`
}

// TableName specifies the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}

// UpsertColumns lists the columns rewritten when an insert hits an existing id
var UpsertColumns = []string{
	"home_team", "away_team", "league", "start_time", "prediction",
	"odds", "confidence", "analysis", "status", "is_elite", "created_at",
}
