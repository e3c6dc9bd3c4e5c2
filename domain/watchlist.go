package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlertDistanceKm is the alert threshold applied when a watchlist add
// does not specify one.
const DefaultAlertDistanceKm = 10_000_000

// WatchlistEntry is one asteroid a user tracks, with a personal alert
// distance threshold. The asteroid name is a snapshot captured at add time
// and is never refreshed from the provider.
type WatchlistEntry struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	AsteroidID      string    `json:"asteroid_id"`
	AsteroidName    string    `json:"asteroid_name"`
	AlertDistanceKm float64   `json:"alert_distance_km"`
	AddedAt         time.Time `json:"added_at"`
}

// AddOutcome reports whether a watchlist add created a row or found an
// existing one. Re-adding the same asteroid is a no-op, not an error.
type AddOutcome int

const (
	AddCreated AddOutcome = iota
	AddAlreadyExists
)
