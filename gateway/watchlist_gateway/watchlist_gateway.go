package watchlist_gateway

import (
	"context"

	"cosmowatch/domain"
	"cosmowatch/driver/astro_db"
	"cosmowatch/driver/models"

	"github.com/google/uuid"
)

// WatchlistGateway adapts the database repository to the watchlist ports.
type WatchlistGateway struct {
	astroDB *astro_db.AstroDBRepository
}

func NewWatchlistGateway(astroDB *astro_db.AstroDBRepository) *WatchlistGateway {
	return &WatchlistGateway{astroDB: astroDB}
}

// AddEntry persists a new watchlist row. The added_at timestamp comes from
// the domain clock so tests can freeze it.
func (g *WatchlistGateway) AddEntry(ctx context.Context, entry domain.WatchlistEntry) (domain.AddOutcome, error) {
	row := models.Watchlist{
		UserID:          entry.UserID,
		AsteroidID:      entry.AsteroidID,
		AsteroidName:    entry.AsteroidName,
		AlertDistanceKm: entry.AlertDistanceKm,
		AddedAt:         domain.Clock().Now(),
	}

	created, err := g.astroDB.InsertWatchlistEntry(ctx, row)
	if err != nil {
		return 0, err
	}
	if !created {
		return domain.AddAlreadyExists, nil
	}
	return domain.AddCreated, nil
}

func (g *WatchlistGateway) ListEntries(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error) {
	rows, err := g.astroDB.ListWatchlistEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.WatchlistEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.WatchlistEntry{
			ID:              row.ID,
			UserID:          row.UserID,
			AsteroidID:      row.AsteroidID,
			AsteroidName:    row.AsteroidName,
			AlertDistanceKm: row.AlertDistanceKm,
			AddedAt:         row.AddedAt,
		})
	}
	return entries, nil
}

func (g *WatchlistGateway) DeleteEntry(ctx context.Context, userID uuid.UUID, entryID int64) error {
	return g.astroDB.DeleteWatchlistEntry(ctx, userID, entryID)
}
