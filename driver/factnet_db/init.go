package factnet_db

import (
	"context"
	"fmt"

	"factnet/config"
	"factnet/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDBConnection(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connectionString(cfg))
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

	logger.Logger.Info("Connected to database", "database", cfg.Name, "host", cfg.Host)

	return pool, nil
}

func connectionString(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
}
