package rest

import (
	"time"

	"cosmowatch/domain"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type WatchlistAddRequest struct {
	AsteroidID      string  `json:"asteroid_id" validate:"required"`
	AsteroidName    string  `json:"asteroid_name" validate:"required"`
	AlertDistanceKm float64 `json:"alert_distance_km" validate:"omitempty,gt=0"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FeedResponse struct {
	Count     int                      `json:"count"`
	Asteroids []domain.AsteroidSummary `json:"asteroids"`
}

// WatchlistEntryRow is the wire shape for one watchlist entry. The owning
// user is implied by the bearer token and never echoed back.
type WatchlistEntryRow struct {
	ID              int64     `json:"id"`
	AsteroidID      string    `json:"asteroid_id"`
	AsteroidName    string    `json:"asteroid_name"`
	AlertDistanceKm float64   `json:"alert_distance_km"`
	AddedAt         time.Time `json:"added_at"`
}

type WatchlistResponse struct {
	Watchlist []WatchlistEntryRow `json:"watchlist"`
}

type AlertsResponse struct {
	Alerts []domain.ApproachAlert `json:"alerts"`
}
