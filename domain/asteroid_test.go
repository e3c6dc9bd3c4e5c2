package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestDefaultFeedWindow(t *testing.T) {
	frozen := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	start, end := DefaultFeedWindow()

	if start != "2025-03-10" {
		t.Errorf("start = %s, want 2025-03-10", start)
	}
	if end != "2025-03-17" {
		t.Errorf("end = %s, want 2025-03-17", end)
	}
}
