package di

import (
	"cosmowatch/config"
	"cosmowatch/driver/astro_db"
	"cosmowatch/driver/neo_api"
	"cosmowatch/gateway/auth_gateway"
	"cosmowatch/gateway/neo_feed_gateway"
	"cosmowatch/gateway/watchlist_gateway"
	"cosmowatch/usecase/auth_usecase"
	"cosmowatch/usecase/evaluate_alerts_usecase"
	"cosmowatch/usecase/fetch_neo_feed_usecase"
	"cosmowatch/usecase/watchlist_usecase"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/metrics"
	"cosmowatch/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FetchNeoFeedUsecase        *fetch_neo_feed_usecase.FetchNeoFeedUsecase
	AddToWatchlistUsecase      *watchlist_usecase.AddToWatchlistUsecase
	FetchWatchlistUsecase      *watchlist_usecase.FetchWatchlistUsecase
	RemoveFromWatchlistUsecase *watchlist_usecase.RemoveFromWatchlistUsecase
	EvaluateAlertsUsecase      *evaluate_alerts_usecase.EvaluateAlertsUsecase
	AuthUsecase                *auth_usecase.AuthUsecase
	AstroDBRepository          *astro_db.AstroDBRepository
	Metrics                    *metrics.Metrics
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	appMetrics := metrics.NewMetrics()

	// Upstream provider wiring: one shared client behind a per-host rate limiter.
	neoClient := neo_api.NewClient(cfg.NASA, logger.Logger)
	neoRateLimiter := rate_limiter.NewHostRateLimiter(cfg.NASA.RateLimitInterval)
	neoFeedGatewayImpl := neo_feed_gateway.NewNeoFeedGateway(neoClient, neoRateLimiter, appMetrics, cfg.NASA.BaseURL)

	astroDBRepository := astro_db.NewAstroDBRepository(pool)
	watchlistGatewayImpl := watchlist_gateway.NewWatchlistGateway(astroDBRepository)
	authGatewayImpl := auth_gateway.NewAuthGateway(astroDBRepository)

	fetchNeoFeedUsecase := fetch_neo_feed_usecase.NewFetchNeoFeedUsecase(neoFeedGatewayImpl, appMetrics)
	addToWatchlistUsecase := watchlist_usecase.NewAddToWatchlistUsecase(watchlistGatewayImpl)
	fetchWatchlistUsecase := watchlist_usecase.NewFetchWatchlistUsecase(watchlistGatewayImpl)
	removeFromWatchlistUsecase := watchlist_usecase.NewRemoveFromWatchlistUsecase(watchlistGatewayImpl)
	evaluateAlertsUsecase := evaluate_alerts_usecase.NewEvaluateAlertsUsecase(
		watchlistGatewayImpl,
		neoFeedGatewayImpl,
		appMetrics,
		cfg.Evaluation.FetchTimeout,
		cfg.Evaluation.MaxConcurrency,
	)
	authUsecase := auth_usecase.NewAuthUsecase(authGatewayImpl, authGatewayImpl, cfg.Auth)

	return &ApplicationComponents{
		FetchNeoFeedUsecase:        fetchNeoFeedUsecase,
		AddToWatchlistUsecase:      addToWatchlistUsecase,
		FetchWatchlistUsecase:      fetchWatchlistUsecase,
		RemoveFromWatchlistUsecase: removeFromWatchlistUsecase,
		EvaluateAlertsUsecase:      evaluateAlertsUsecase,
		AuthUsecase:                authUsecase,
		AstroDBRepository:          astroDBRepository,
		Metrics:                    appMetrics,
	}
}
