package fetch_neo_feed_usecase

import (
	"context"

	"cosmowatch/domain"
	"cosmowatch/port/neo_feed_port"
	"cosmowatch/utils/metrics"
)

// FetchNeoFeedUsecase flattens the provider's per-date grouping into a
// uniform list of asteroid summaries, attaching a risk score and category
// to each record.
type FetchNeoFeedUsecase struct {
	fetchNeoFeedPort neo_feed_port.FetchNeoFeedPort
	metrics          *metrics.Metrics
}

func NewFetchNeoFeedUsecase(fetchNeoFeedPort neo_feed_port.FetchNeoFeedPort, m *metrics.Metrics) *FetchNeoFeedUsecase {
	return &FetchNeoFeedUsecase{fetchNeoFeedPort: fetchNeoFeedPort, metrics: m}
}

// Execute queries the feed for the given YYYY-MM-DD range; empty dates fall
// back to the default [today, today+7d] window. Every raw record yields
// exactly one summary: no filtering, no dedup, bucket order then list order.
func (u *FetchNeoFeedUsecase) Execute(ctx context.Context, startDate, endDate string) ([]domain.AsteroidSummary, error) {
	if startDate == "" || endDate == "" {
		defaultStart, defaultEnd := domain.DefaultFeedWindow()
		if startDate == "" {
			startDate = defaultStart
		}
		if endDate == "" {
			endDate = defaultEnd
		}
	}

	buckets, err := u.fetchNeoFeedPort.FetchNeoFeed(ctx, startDate, endDate)
	if err != nil {
		u.countFeed("error")
		return nil, err
	}
	u.countFeed("success")

	summaries := make([]domain.AsteroidSummary, 0)
	for _, bucket := range buckets {
		for _, rec := range bucket.Records {
			summaries = append(summaries, summarize(rec))
		}
	}
	return summaries, nil
}

func (u *FetchNeoFeedUsecase) countFeed(outcome string) {
	if u.metrics != nil {
		u.metrics.FeedRequests.WithLabelValues(outcome).Inc()
	}
}

func summarize(rec domain.NeoRecord) domain.AsteroidSummary {
	score := domain.RiskScore(rec)

	summary := domain.AsteroidSummary{
		ID:           rec.ID,
		Name:         rec.Name,
		DiameterM:    rec.DiameterMaxMeters,
		IsHazardous:  rec.Hazardous,
		RiskScore:    score,
		RiskCategory: domain.CategorizeRisk(score),
	}

	// Only the first close approach feeds the summary; absent fields stay nil.
	if len(rec.Approaches) > 0 {
		first := rec.Approaches[0]
		summary.VelocityKmh = first.VelocityKmh
		summary.DistanceKm = first.DistanceKm
		if first.Date != "" {
			date := first.Date
			summary.ApproachDate = &date
		}
	}

	return summary
}
