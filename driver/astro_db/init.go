package astro_db

import (
	"context"
	"fmt"
	"os"

	"cosmowatch/config"
	"cosmowatch/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBPool opens the connection pool used by every repository method.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectionTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func getDBConnectionString() string {
	// .env is optional outside local development.
	if err := godotenv.Load(); err != nil {
		logger.Logger.Info("No .env file loaded", "error", err)
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
}
