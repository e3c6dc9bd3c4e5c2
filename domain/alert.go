package domain

// AlertLevel grades an approach alert by proximity.
type AlertLevel string

const (
	AlertLevelHigh   AlertLevel = "HIGH"
	AlertLevelMedium AlertLevel = "MEDIUM"
)

// HighAlertDistanceKm is the miss distance below which an alert escalates to HIGH.
const HighAlertDistanceKm = 5_000_000

// MaxApproachesPerEntry bounds how many future close approaches are
// considered per watchlist entry. The provider returns them chronologically.
const MaxApproachesPerEntry = 3

// ApproachAlert is one materialized alert: a close approach that undercuts
// the owning watchlist entry's distance threshold. Ephemeral, never stored.
type ApproachAlert struct {
	AsteroidName string     `json:"asteroid_name"`
	ApproachDate string     `json:"approach_date"`
	DistanceKm   float64    `json:"distance_km"`
	VelocityKmh  float64    `json:"velocity_kmh"`
	AlertLevel   AlertLevel `json:"alert_level"`
}

// AlertLevelFor returns the level for a given miss distance.
func AlertLevelFor(distanceKm float64) AlertLevel {
	if distanceKm < HighAlertDistanceKm {
		return AlertLevelHigh
	}
	return AlertLevelMedium
}

// EvaluationOutcome is the per-entry result of one alert evaluation pass.
// A failed provider fetch marks the entry skipped with the reason retained
// for logging; the public response only ever carries the successes.
type EvaluationOutcome struct {
	AsteroidID string
	Alerts     []ApproachAlert
	Skipped    bool
	Reason     error
}
