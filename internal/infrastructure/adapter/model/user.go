package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID                   string     `gorm:"primaryKey;type:varchar(32)"`
	Email                string     `gorm:"type:varchar(320);not null;uniqueIndex:idx_users_email"`
	PasswordHash         string     `gorm:"column:password_hash;type:varchar(100);not null"`
	Tier                 string     `gorm:"type:varchar(16);not null"`
	PredictionsRemaining int        `gorm:"not null"`
	SubscriptionEnd      *time.Time `gorm:"null"`
	CreatedAt            time.Time  `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
