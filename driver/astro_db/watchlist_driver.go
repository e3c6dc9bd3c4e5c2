package astro_db

import (
	"context"
	"errors"

	"cosmowatch/driver/models"
	"cosmowatch/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertWatchlistEntry inserts a watchlist row, reporting whether a new row
// was created. Idempotent on (user_id, asteroid_id): a conflicting insert
// leaves the existing row untouched and returns false.
func (r *AstroDBRepository) InsertWatchlistEntry(ctx context.Context, entry models.Watchlist) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO watchlist (user_id, asteroid_id, asteroid_name, alert_distance_km, added_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, asteroid_id) DO NOTHING`,
		entry.UserID, entry.AsteroidID, entry.AsteroidName, entry.AlertDistanceKm, entry.AddedAt)
	if err != nil {
		logger.Logger.Error("error inserting watchlist entry", "error", err, "user_id", entry.UserID)
		return false, errors.New("error inserting watchlist entry")
	}

	return tag.RowsAffected() > 0, nil
}

// ListWatchlistEntries returns the rows owned by one user, newest first.
func (r *AstroDBRepository) ListWatchlistEntries(ctx context.Context, userID uuid.UUID) ([]*models.Watchlist, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, asteroid_id, asteroid_name, alert_distance_km, added_at
		 FROM watchlist WHERE user_id = $1 ORDER BY added_at DESC`,
		userID)
	if err != nil {
		logger.Logger.Error("error fetching watchlist", "error", err, "user_id", userID)
		return nil, errors.New("error fetching watchlist")
	}
	defer rows.Close()

	var entries []*models.Watchlist
	for rows.Next() {
		var entry models.Watchlist
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.AsteroidID, &entry.AsteroidName, &entry.AlertDistanceKm, &entry.AddedAt)
		if err != nil {
			logger.Logger.Error("error scanning watchlist entry", "error", err)
			return nil, errors.New("error scanning watchlist entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

// DeleteWatchlistEntry removes one row, scoped to the owning user so one
// user can never delete another user's entry. Returns pgx.ErrNoRows when
// nothing matched.
func (r *AstroDBRepository) DeleteWatchlistEntry(ctx context.Context, userID uuid.UUID, entryID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM watchlist WHERE id = $1 AND user_id = $2`,
		entryID, userID)
	if err != nil {
		logger.Logger.Error("error deleting watchlist entry", "error", err, "entry_id", entryID)
		return errors.New("error deleting watchlist entry")
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
