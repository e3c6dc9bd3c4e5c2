package rest

import (
	"net/http"
	"strings"

	"cosmowatch/config"
	"cosmowatch/di"
	middleware_custom "cosmowatch/middleware"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/validation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every later log line carries one
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Request-ID"},
		MaxAge:       86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	// 6. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 7. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") || strings.Contains(c.Path(), "/metrics")
		},
	}))

	e.GET("/", handleRoot())
	e.GET("/health", handleHealth())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	validate := validation.New()
	jwtAuth := middleware_custom.NewJWTAuthMiddleware(logger.Logger, cfg)

	registerAuthRoutes(e, container, validate)
	registerNeoRoutes(e, container)
	registerAlertRoutes(e, container, jwtAuth, validate)
}

func handleRoot() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Asteroid tracking service",
			"status":  "running",
		})
	}
}

func handleHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}
