package watchlist_port

import (
	"context"

	"cosmowatch/domain"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen -source=watchlist_port.go -destination=../../mocks/mock_watchlist_port.go -package=mocks

// AddWatchlistPort persists a new watchlist entry. Adding an asteroid the
// user already tracks reports AddAlreadyExists without touching the row.
type AddWatchlistPort interface {
	AddEntry(ctx context.Context, entry domain.WatchlistEntry) (domain.AddOutcome, error)
}

// ListWatchlistPort returns the watchlist entries owned by one user.
type ListWatchlistPort interface {
	ListEntries(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error)
}

// DeleteWatchlistPort removes an entry, scoped to the owning user.
type DeleteWatchlistPort interface {
	DeleteEntry(ctx context.Context, userID uuid.UUID, entryID int64) error
}
