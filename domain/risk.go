package domain

// RiskCategory is the categorical hazard label derived from a risk score.
type RiskCategory string

const (
	RiskLow      RiskCategory = "LOW"
	RiskModerate RiskCategory = "MODERATE"
	RiskHigh     RiskCategory = "HIGH"
	RiskCritical RiskCategory = "CRITICAL"
)

// Risk scoring policy. The weights and thresholds are business rules kept as
// named constants so the policy can change without touching control flow.
const (
	MaxRiskScore = 100

	hazardousPoints = 40

	diameterLargeMeters  = 1000
	diameterMediumMeters = 500
	diameterSmallMeters  = 100
	diameterLargePoints  = 30
	diameterMediumPoints = 20
	diameterSmallPoints  = 10

	distanceNearKm     = 1_000_000
	distanceMidKm      = 5_000_000
	distanceFarKm      = 10_000_000
	distanceNearPoints = 30
	distanceMidPoints  = 20
	distanceFarPoints  = 10

	categoryCriticalFloor = 70
	categoryHighFloor     = 50
	categoryModerateFloor = 30
)

// RiskScore computes the additive hazard score for one asteroid record,
// clamped to [0, MaxRiskScore]. Missing nested fields contribute zero;
// scoring never fails.
func RiskScore(rec NeoRecord) int {
	score := 0

	if rec.Hazardous {
		score += hazardousPoints
	}

	switch d := rec.DiameterMaxMeters; {
	case d > diameterLargeMeters:
		score += diameterLargePoints
	case d > diameterMediumMeters:
		score += diameterMediumPoints
	case d > diameterSmallMeters:
		score += diameterSmallPoints
	}

	// Only the first close-approach record feeds the proximity contribution.
	if len(rec.Approaches) > 0 && rec.Approaches[0].DistanceKm != nil {
		switch dist := *rec.Approaches[0].DistanceKm; {
		case dist < distanceNearKm:
			score += distanceNearPoints
		case dist < distanceMidKm:
			score += distanceMidPoints
		case dist < distanceFarKm:
			score += distanceFarPoints
		}
	}

	if score > MaxRiskScore {
		score = MaxRiskScore
	}
	return score
}

// CategorizeRisk maps a score onto its categorical label. Boundaries are
// inclusive on the lower bound: 30/50/70.
func CategorizeRisk(score int) RiskCategory {
	switch {
	case score >= categoryCriticalFloor:
		return RiskCritical
	case score >= categoryHighFloor:
		return RiskHigh
	case score >= categoryModerateFloor:
		return RiskModerate
	default:
		return RiskLow
	}
}
