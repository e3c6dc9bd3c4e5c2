package main

import (
	"context"
	"fmt"

	"cosmowatch/config"
	"cosmowatch/di"
	"cosmowatch/driver/astro_db"
	"cosmowatch/rest"
	"cosmowatch/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()
	pool, err := astro_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
