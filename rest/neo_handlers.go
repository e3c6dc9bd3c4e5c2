package rest

import (
	"net/http"
	"time"

	"cosmowatch/di"
	"cosmowatch/domain"

	"github.com/labstack/echo/v4"
)

// Feed queries are public; only watchlist and alert routes need a user.
func registerNeoRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	neos := e.Group("/neos")
	neos.GET("/feed", handleNeoFeed(container))
}

func handleNeoFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		startDate := c.QueryParam("start_date")
		endDate := c.QueryParam("end_date")

		if startDate != "" {
			if _, err := time.Parse(domain.FeedDateFormat, startDate); err != nil {
				return handleValidationError(c, "start_date must be YYYY-MM-DD", "start_date", startDate)
			}
		}
		if endDate != "" {
			if _, err := time.Parse(domain.FeedDateFormat, endDate); err != nil {
				return handleValidationError(c, "end_date must be YYYY-MM-DD", "end_date", endDate)
			}
		}

		asteroids, err := container.FetchNeoFeedUsecase.Execute(c.Request().Context(), startDate, endDate)
		if err != nil {
			return handleError(c, err, "fetch_neo_feed")
		}

		return c.JSON(http.StatusOK, FeedResponse{Count: len(asteroids), Asteroids: asteroids})
	}
}
