package rest

import (
	"errors"
	"net/http"
	"strconv"

	"cosmowatch/di"
	"cosmowatch/domain"
	"cosmowatch/middleware"
	apperrors "cosmowatch/utils/errors"
	"cosmowatch/utils/validation"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func registerAlertRoutes(e *echo.Echo, container *di.ApplicationComponents, jwtAuth *middleware.JWTAuthMiddleware, validate *validation.Validator) {
	alerts := e.Group("/alerts", jwtAuth.RequireJWT())
	alerts.POST("/watchlist", handleAddToWatchlist(container, validate))
	alerts.GET("/watchlist", handleFetchWatchlist(container))
	alerts.DELETE("/watchlist/:id", handleRemoveFromWatchlist(container))
	alerts.GET("/upcoming", handleUpcomingAlerts(container))
}

func handleAddToWatchlist(container *di.ApplicationComponents, validate *validation.Validator) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserFromEchoContext(c)
		if err != nil {
			return handleError(c, err, "add_to_watchlist")
		}

		var req WatchlistAddRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request body", "body", nil)
		}
		if err := validate.Validate(&req); err != nil {
			return handleValidationError(c, err.Error(), "body", nil)
		}

		outcome, err := container.AddToWatchlistUsecase.Execute(
			c.Request().Context(), user.UserID, req.AsteroidID, req.AsteroidName, req.AlertDistanceKm)
		if err != nil {
			return handleError(c, err, "add_to_watchlist")
		}

		message := "Added to watchlist"
		status := http.StatusCreated
		if outcome == domain.AddAlreadyExists {
			message = "Already in watchlist"
			status = http.StatusOK
		}
		return c.JSON(status, MessageResponse{Message: message})
	}
}

func handleFetchWatchlist(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserFromEchoContext(c)
		if err != nil {
			return handleError(c, err, "fetch_watchlist")
		}

		entries, err := container.FetchWatchlistUsecase.Execute(c.Request().Context(), user.UserID)
		if err != nil {
			return handleError(c, err, "fetch_watchlist")
		}

		rows := make([]WatchlistEntryRow, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, WatchlistEntryRow{
				ID:              entry.ID,
				AsteroidID:      entry.AsteroidID,
				AsteroidName:    entry.AsteroidName,
				AlertDistanceKm: entry.AlertDistanceKm,
				AddedAt:         entry.AddedAt,
			})
		}
		return c.JSON(http.StatusOK, WatchlistResponse{Watchlist: rows})
	}
}

func handleRemoveFromWatchlist(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserFromEchoContext(c)
		if err != nil {
			return handleError(c, err, "remove_from_watchlist")
		}

		entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return handleValidationError(c, "Invalid watchlist entry id", "id", c.Param("id"))
		}

		err = container.RemoveFromWatchlistUsecase.Execute(c.Request().Context(), user.UserID, entryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return handleError(c, apperrors.NewNotFoundContextError(
					"watchlist entry not found",
					"rest", "AlertHandler", "remove_from_watchlist",
					map[string]interface{}{"entry_id": entryID},
				), "remove_from_watchlist")
			}
			return handleError(c, err, "remove_from_watchlist")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "Removed from watchlist"})
	}
}

func handleUpcomingAlerts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := middleware.GetUserFromEchoContext(c)
		if err != nil {
			return handleError(c, err, "upcoming_alerts")
		}

		alerts, err := container.EvaluateAlertsUsecase.Execute(c.Request().Context(), user.UserID)
		if err != nil {
			return handleError(c, err, "upcoming_alerts")
		}

		return c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts})
	}
}
