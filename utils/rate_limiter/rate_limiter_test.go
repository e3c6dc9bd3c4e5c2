package rate_limiter

import (
	"context"
	"testing"
	"time"
)

func TestNewHostRateLimiter(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second)
	if limiter == nil {
		t.Fatal("NewHostRateLimiter() returned nil")
	}
	if limiter.interval != time.Second {
		t.Errorf("interval = %v, want 1s", limiter.interval)
	}
	if limiter.limiters == nil {
		t.Error("limiters map is nil")
	}
}

func TestHostRateLimiter_WaitForHost(t *testing.T) {
	tests := []struct {
		name    string
		urlStr  string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			urlStr:  "https://api.nasa.gov/neo/rest/v1",
			wantErr: false,
		},
		{
			name:    "missing host",
			urlStr:  "/neo/rest/v1",
			wantErr: true,
		},
		{
			name:    "unparsable URL",
			urlStr:  "://bad",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewHostRateLimiter(10 * time.Millisecond)
			err := limiter.WaitForHost(context.Background(), tt.urlStr)
			if (err != nil) != tt.wantErr {
				t.Errorf("WaitForHost() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHostRateLimiter_ReusesLimiterPerHost(t *testing.T) {
	limiter := NewHostRateLimiter(time.Minute)

	first := limiter.getLimiterForHost("api.nasa.gov")
	second := limiter.getLimiterForHost("api.nasa.gov")
	other := limiter.getLimiterForHost("example.com")

	if first != second {
		t.Error("same host must share one limiter")
	}
	if first == other {
		t.Error("different hosts must not share a limiter")
	}
}

func TestHostRateLimiter_SecondCallBlocks(t *testing.T) {
	limiter := NewHostRateLimiter(50 * time.Millisecond)

	start := time.Now()
	if err := limiter.WaitForHost(context.Background(), "https://api.nasa.gov/feed"); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	if err := limiter.WaitForHost(context.Background(), "https://api.nasa.gov/feed"); err != nil {
		t.Fatalf("second wait: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("second call returned after %v, expected it to wait for the interval", elapsed)
	}
}
