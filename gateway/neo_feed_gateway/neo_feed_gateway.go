package neo_feed_gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"cosmowatch/domain"
	"cosmowatch/driver/neo_api"
	apperrors "cosmowatch/utils/errors"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/metrics"
	"cosmowatch/utils/rate_limiter"
)

// NeoFeedGateway adapts the NeoWs driver to the feed ports, translating the
// provider's wire shapes into domain values. Outbound calls are rate limited
// per host so evaluation fan-out cannot exhaust the API-key quota.
type NeoFeedGateway struct {
	client      *neo_api.Client
	rateLimiter *rate_limiter.HostRateLimiter
	metrics     *metrics.Metrics
	baseURL     string
}

func NewNeoFeedGateway(client *neo_api.Client, rateLimiter *rate_limiter.HostRateLimiter, m *metrics.Metrics, baseURL string) *NeoFeedGateway {
	return &NeoFeedGateway{
		client:      client,
		rateLimiter: rateLimiter,
		metrics:     m,
		baseURL:     baseURL,
	}
}

// FetchNeoFeed retrieves and converts the date-range feed. Date buckets come
// back ordered ascending so downstream iteration is deterministic.
func (g *NeoFeedGateway) FetchNeoFeed(ctx context.Context, startDate, endDate string) ([]domain.NeoDateBucket, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.baseURL); err != nil {
			logger.Logger.Error("rate limiting failed", "error", err)
			return nil, errors.New("rate limiting failed")
		}
	}

	timer := g.observe("feed")
	feed, err := g.client.FetchFeed(ctx, startDate, endDate)
	timer()
	if err != nil {
		logger.Logger.Error("error fetching NEO feed", "error", err, "start_date", startDate, "end_date", endDate)
		return nil, apperrors.NewExternalAPIContextError(
			"error fetching NEO feed",
			"gateway", "NeoFeedGateway", "FetchNeoFeed",
			err,
			map[string]interface{}{"start_date": startDate, "end_date": endDate},
		)
	}

	return toDateBuckets(feed), nil
}

// FetchNeoByID retrieves and strictly converts a single asteroid's detail
// record. Only the first few approaches are parsed; a malformed miss
// distance or velocity among them fails the whole lookup, and the evaluator
// treats that as a skipped entry.
func (g *NeoFeedGateway) FetchNeoByID(ctx context.Context, asteroidID string) (*domain.NeoDetail, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.baseURL); err != nil {
			logger.Logger.Error("rate limiting failed", "error", err)
			return nil, errors.New("rate limiting failed")
		}
	}

	timer := g.observe("lookup")
	neo, err := g.client.FetchNeo(ctx, asteroidID)
	timer()
	if err != nil {
		return nil, fmt.Errorf("error fetching NEO %s: %w", asteroidID, err)
	}

	return toDetail(neo)
}

func (g *NeoFeedGateway) observe(operation string) func() {
	if g.metrics == nil {
		return func() {}
	}
	t := domain.Clock().Now()
	return func() {
		g.metrics.NeoAPIDuration.WithLabelValues(operation).Observe(domain.Clock().Since(t).Seconds())
	}
}

func toDateBuckets(feed *neo_api.FeedResponse) []domain.NeoDateBucket {
	dates := make([]string, 0, len(feed.NearEarthObjects))
	for date := range feed.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	buckets := make([]domain.NeoDateBucket, 0, len(dates))
	for _, date := range dates {
		objects := feed.NearEarthObjects[date]
		records := make([]domain.NeoRecord, 0, len(objects))
		for _, obj := range objects {
			records = append(records, toRecord(obj))
		}
		buckets = append(buckets, domain.NeoDateBucket{Date: date, Records: records})
	}
	return buckets
}

func toRecord(obj neo_api.NeoObject) domain.NeoRecord {
	approaches := make([]domain.CloseApproach, 0, len(obj.CloseApproachData))
	for _, ca := range obj.CloseApproachData {
		approaches = append(approaches, domain.CloseApproach{
			Date:        ca.CloseApproachDate,
			VelocityKmh: parseOptionalFloat(ca.RelativeVelocity.KilometersPerHour),
			DistanceKm:  parseOptionalFloat(ca.MissDistance.Kilometers),
		})
	}

	return domain.NeoRecord{
		ID:                obj.ID,
		Name:              obj.Name,
		DiameterMaxMeters: obj.EstimatedDiameter.Meters.EstimatedDiameterMax,
		Hazardous:         obj.IsPotentiallyHazardousAsteroid,
		Approaches:        approaches,
	}
}

func toDetail(neo *neo_api.NeoObject) (*domain.NeoDetail, error) {
	// NeoWs returns approaches chronologically; only the leading ones are
	// ever evaluated, so a malformed record past that bound must not fail
	// the lookup.
	data := neo.CloseApproachData
	if len(data) > domain.MaxApproachesPerEntry {
		data = data[:domain.MaxApproachesPerEntry]
	}

	approaches := make([]domain.NeoApproach, 0, len(data))
	for _, ca := range data {
		distance, err := strconv.ParseFloat(ca.MissDistance.Kilometers, 64)
		if err != nil {
			return nil, fmt.Errorf("parse miss distance %q: %w", ca.MissDistance.Kilometers, err)
		}
		velocity, err := strconv.ParseFloat(ca.RelativeVelocity.KilometersPerHour, 64)
		if err != nil {
			return nil, fmt.Errorf("parse relative velocity %q: %w", ca.RelativeVelocity.KilometersPerHour, err)
		}
		approaches = append(approaches, domain.NeoApproach{
			Date:        ca.CloseApproachDate,
			VelocityKmh: velocity,
			DistanceKm:  distance,
		})
	}

	return &domain.NeoDetail{
		ID:         neo.ID,
		Name:       neo.Name,
		Approaches: approaches,
	}, nil
}

// parseOptionalFloat converts a provider numeric string, degrading absent or
// malformed values to nil instead of failing the record.
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
