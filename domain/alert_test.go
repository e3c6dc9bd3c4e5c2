package domain

import "testing"

func TestAlertLevelFor(t *testing.T) {
	tests := []struct {
		distanceKm float64
		want       AlertLevel
	}{
		{4_999_999, AlertLevelHigh},
		{5_000_000, AlertLevelMedium},
		{100_000, AlertLevelHigh},
		{9_000_000, AlertLevelMedium},
	}

	for _, tt := range tests {
		if got := AlertLevelFor(tt.distanceKm); got != tt.want {
			t.Errorf("AlertLevelFor(%.0f) = %s, want %s", tt.distanceKm, got, tt.want)
		}
	}
}
