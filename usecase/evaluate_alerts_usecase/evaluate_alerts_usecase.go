package evaluate_alerts_usecase

import (
	"context"
	"sort"
	"time"

	"cosmowatch/domain"
	"cosmowatch/port/neo_feed_port"
	"cosmowatch/port/watchlist_port"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EvaluateAlertsUsecase joins a user's watchlist against live approach data:
// each entry's asteroid is fetched independently, its first few approaches
// are filtered against the entry's distance threshold, and the surviving
// alerts are merged and sorted ascending by miss distance.
//
// A failed fetch skips only that entry. The reason is logged and counted but
// never surfaced to the caller, so one flaky upstream lookup cannot poison a
// whole evaluation.
type EvaluateAlertsUsecase struct {
	listWatchlistPort watchlist_port.ListWatchlistPort
	fetchNeoByIDPort  neo_feed_port.FetchNeoByIDPort
	metrics           *metrics.Metrics
	fetchTimeout      time.Duration
	maxConcurrency    int
}

func NewEvaluateAlertsUsecase(
	listWatchlistPort watchlist_port.ListWatchlistPort,
	fetchNeoByIDPort neo_feed_port.FetchNeoByIDPort,
	m *metrics.Metrics,
	fetchTimeout time.Duration,
	maxConcurrency int,
) *EvaluateAlertsUsecase {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &EvaluateAlertsUsecase{
		listWatchlistPort: listWatchlistPort,
		fetchNeoByIDPort:  fetchNeoByIDPort,
		metrics:           m,
		fetchTimeout:      fetchTimeout,
		maxConcurrency:    maxConcurrency,
	}
}

// Execute evaluates every watchlist entry of one user and returns the merged
// alert list sorted ascending by distance. The sort is stable, so alerts at
// the same distance keep their insertion order regardless of which fetch
// finished first.
func (u *EvaluateAlertsUsecase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.ApproachAlert, error) {
	entries, err := u.listWatchlistPort.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Per-entry outcomes land in a pre-sized slice, keyed by index, so the
	// merge order is the watchlist order and no mutex is needed.
	outcomes := make([]domain.EvaluationOutcome, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.maxConcurrency)
	for i, entry := range entries {
		g.Go(func() error {
			outcomes[i] = u.evaluateEntry(gctx, entry)
			// Entry failures are absorbed into the outcome; returning an
			// error here would cancel the sibling fetches.
			return nil
		})
	}
	// Only ever nil: every goroutine returns nil.
	_ = g.Wait()

	alerts := make([]domain.ApproachAlert, 0)
	for _, outcome := range outcomes {
		u.record(outcome)
		if outcome.Skipped {
			logger.Logger.Warn("watchlist entry skipped during evaluation",
				"asteroid_id", outcome.AsteroidID,
				"reason", outcome.Reason,
				"user_id", userID)
			continue
		}
		alerts = append(alerts, outcome.Alerts...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DistanceKm < alerts[j].DistanceKm
	})

	return alerts, nil
}

// evaluateEntry fetches one asteroid's detail record under the per-fetch
// timeout and filters its first approaches against the entry threshold.
func (u *EvaluateAlertsUsecase) evaluateEntry(ctx context.Context, entry domain.WatchlistEntry) domain.EvaluationOutcome {
	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()

	detail, err := u.fetchNeoByIDPort.FetchNeoByID(fetchCtx, entry.AsteroidID)
	if err != nil {
		return domain.EvaluationOutcome{AsteroidID: entry.AsteroidID, Skipped: true, Reason: err}
	}

	approaches := detail.Approaches
	if len(approaches) > domain.MaxApproachesPerEntry {
		approaches = approaches[:domain.MaxApproachesPerEntry]
	}

	var alerts []domain.ApproachAlert
	for _, approach := range approaches {
		if approach.DistanceKm >= entry.AlertDistanceKm {
			continue
		}
		alerts = append(alerts, domain.ApproachAlert{
			// The name is the add-time snapshot, not the provider's current one.
			AsteroidName: entry.AsteroidName,
			ApproachDate: approach.Date,
			DistanceKm:   approach.DistanceKm,
			VelocityKmh:  approach.VelocityKmh,
			AlertLevel:   domain.AlertLevelFor(approach.DistanceKm),
		})
	}

	return domain.EvaluationOutcome{AsteroidID: entry.AsteroidID, Alerts: alerts}
}

func (u *EvaluateAlertsUsecase) record(outcome domain.EvaluationOutcome) {
	if u.metrics == nil {
		return
	}
	u.metrics.EntriesEvaluated.Inc()
	if outcome.Skipped {
		u.metrics.EntriesSkipped.Inc()
		return
	}
	u.metrics.AlertsEmitted.Add(float64(len(outcome.Alerts)))
}
