package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"factnet/config"
	"factnet/di"
	"factnet/driver/factnet_db"
	"factnet/job"
	"factnet/rest"
	"factnet/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.InitLoggerWithLevel(cfg.Logging.Level)
	log.Info("Starting server", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := factnet_db.InitDBConnection(ctx, cfg.Database)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool)

	scheduler := job.NewJobScheduler()
	if cfg.Ingest.Enabled {
		collector := job.NewFeedCollector(cfg.Ingest.FeedSources(), container.RegisterArticleUsecase)
		scheduler.Add(job.Job{
			Name:     "feed_collector",
			Interval: cfg.Ingest.Interval,
			Timeout:  cfg.Ingest.Timeout,
			Fn:       collector.Collect,
		})
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			logger.Logger.Info("Server stopped", "reason", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server shutdown failed", "error", err)
	}
	scheduler.Shutdown()
}
