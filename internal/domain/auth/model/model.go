package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a catalog principal. One row per Telegram account; created on
// first successful login and updated with the latest profile fields on
// every subsequent one.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TgID        int64     `gorm:"column:tg_id;uniqueIndex"`
	TgUsername  string    `gorm:"size:255"`
	FirstName   string    `gorm:"size:255"`
	LastName    string    `gorm:"size:255"`
	PhoneNumber string    `gorm:"size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Admin ties a principal to back-office credentials. At most one per user,
// username unique across the table.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Username     string    `gorm:"size:255;uniqueIndex"`
	PasswordHash string    `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenPair is what a successful login hands back to the transport layer.
// Refresh re-issues the access half only, so RefreshToken may be empty there.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	UserID       uuid.UUID
}
