package neo_feed_port

import (
	"context"

	"cosmowatch/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=neo_feed_port.go -destination=../../mocks/mock_neo_feed_port.go -package=mocks

// FetchNeoFeedPort retrieves a batch of near-earth-object records grouped by
// date for the given YYYY-MM-DD range.
type FetchNeoFeedPort interface {
	FetchNeoFeed(ctx context.Context, startDate, endDate string) ([]domain.NeoDateBucket, error)
}

// FetchNeoByIDPort retrieves the detail record of a single asteroid.
type FetchNeoByIDPort interface {
	FetchNeoByID(ctx context.Context, asteroidID string) (*domain.NeoDetail, error)
}
