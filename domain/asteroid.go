package domain

import "time"

// CloseApproach is a single predicted pass of a near-Earth object, with
// velocity and distance parsed opportunistically: the provider delivers them
// as strings, and an absent or unparsable value degrades to nil instead of
// failing the whole record.
type CloseApproach struct {
	Date        string
	VelocityKmh *float64
	DistanceKm  *float64
}

// NeoRecord is one raw near-earth-object record from the provider feed,
// reduced to the fields the scorer and aggregator consume.
type NeoRecord struct {
	ID                string
	Name              string
	DiameterMaxMeters float64
	Hazardous         bool
	Approaches        []CloseApproach
}

// NeoDateBucket groups the feed records of a single calendar date. The
// provider keys its feed by date; buckets are ordered by date ascending once
// decoded so downstream iteration is deterministic.
type NeoDateBucket struct {
	Date    string
	Records []NeoRecord
}

// NeoApproach is a fully-parsed close approach from a single-object lookup.
// Unlike CloseApproach, distance and velocity are mandatory here: alert
// evaluation compares them against user thresholds, so a record that cannot
// be parsed fails the lookup instead of producing a nil.
type NeoApproach struct {
	Date        string
	VelocityKmh float64
	DistanceKm  float64
}

// NeoDetail is the single-object lookup result used by alert evaluation.
type NeoDetail struct {
	ID         string
	Name       string
	Approaches []NeoApproach
}

// AsteroidSummary is the derived per-asteroid view returned by the feed
// endpoint. Constructed fresh on every query, never stored.
type AsteroidSummary struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DiameterM    float64      `json:"diameter_m"`
	IsHazardous  bool         `json:"is_hazardous"`
	VelocityKmh  *float64     `json:"velocity_kmh"`
	DistanceKm   *float64     `json:"distance_km"`
	ApproachDate *string      `json:"approach_date"`
	RiskScore    int          `json:"risk_score"`
	RiskCategory RiskCategory `json:"risk_category"`
}

// FeedDateFormat is the calendar-date layout the provider expects and emits.
const FeedDateFormat = "2006-01-02"

// DefaultFeedWindow returns the default query window [today, today+7d]
// formatted as YYYY-MM-DD.
func DefaultFeedWindow() (start, end string) {
	now := clock.Now()
	return now.Format(FeedDateFormat), now.Add(7 * 24 * time.Hour).Format(FeedDateFormat)
}
