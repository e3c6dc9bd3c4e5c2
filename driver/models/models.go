package models

import (
	"time"

	"github.com/google/uuid"
)

// Watchlist is a row in the watchlist table.
type Watchlist struct {
	ID              int64
	UserID          uuid.UUID
	AsteroidID      string
	AsteroidName    string
	AlertDistanceKm float64
	AddedAt         time.Time
}

// User is a row in the users table.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
