package watchlist_usecase

import (
	"context"

	"cosmowatch/domain"
	"cosmowatch/port/watchlist_port"

	"github.com/google/uuid"
)

// AddToWatchlistUsecase adds an asteroid to a user's watchlist. The add is
// idempotent on (user, asteroid): re-adding reports AddAlreadyExists and
// never updates the stored name or threshold.
type AddToWatchlistUsecase struct {
	addWatchlistPort watchlist_port.AddWatchlistPort
}

func NewAddToWatchlistUsecase(addWatchlistPort watchlist_port.AddWatchlistPort) *AddToWatchlistUsecase {
	return &AddToWatchlistUsecase{addWatchlistPort: addWatchlistPort}
}

func (u *AddToWatchlistUsecase) Execute(ctx context.Context, userID uuid.UUID, asteroidID, asteroidName string, alertDistanceKm float64) (domain.AddOutcome, error) {
	if alertDistanceKm <= 0 {
		alertDistanceKm = domain.DefaultAlertDistanceKm
	}

	return u.addWatchlistPort.AddEntry(ctx, domain.WatchlistEntry{
		UserID:          userID,
		AsteroidID:      asteroidID,
		AsteroidName:    asteroidName,
		AlertDistanceKm: alertDistanceKm,
	})
}

// FetchWatchlistUsecase lists the caller's own entries.
type FetchWatchlistUsecase struct {
	listWatchlistPort watchlist_port.ListWatchlistPort
}

func NewFetchWatchlistUsecase(listWatchlistPort watchlist_port.ListWatchlistPort) *FetchWatchlistUsecase {
	return &FetchWatchlistUsecase{listWatchlistPort: listWatchlistPort}
}

func (u *FetchWatchlistUsecase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error) {
	return u.listWatchlistPort.ListEntries(ctx, userID)
}

// RemoveFromWatchlistUsecase deletes one entry, scoped to the owning user.
type RemoveFromWatchlistUsecase struct {
	deleteWatchlistPort watchlist_port.DeleteWatchlistPort
}

func NewRemoveFromWatchlistUsecase(deleteWatchlistPort watchlist_port.DeleteWatchlistPort) *RemoveFromWatchlistUsecase {
	return &RemoveFromWatchlistUsecase{deleteWatchlistPort: deleteWatchlistPort}
}

func (u *RemoveFromWatchlistUsecase) Execute(ctx context.Context, userID uuid.UUID, entryID int64) error {
	return u.deleteWatchlistPort.DeleteEntry(ctx, userID, entryID)
}
