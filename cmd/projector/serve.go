package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/scoreline/internal/api"
	"github.com/yourusername/scoreline/internal/config"
	"github.com/yourusername/scoreline/internal/engine"
	"github.com/yourusername/scoreline/internal/health"
	"github.com/yourusername/scoreline/internal/metrics"
	"github.com/yourusername/scoreline/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the projection HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.ValidateEnvironment(cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, newAppLogger(cfg, cmd))
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("Scoreline projector starting")

	metrics.InitRegistry()

	e, err := engine.NewFromConfig(&cfg.Engine, log)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	var (
		projector engine.Projector = e
		sched     *scheduler.Scheduler
	)
	if cfg.Cache.Enabled {
		cached := engine.NewCachedEngine(e, engine.NewResultCacheFromConfig(&cfg.Cache), log)
		projector = cached

		sched = scheduler.NewScheduler(log)
		if _, err := sched.ScheduleCacheMaintenance(cfg.Cache.MaintenanceSchedule, cached.Cache()); err != nil {
			return fmt.Errorf("failed to schedule cache maintenance: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				log.WithError(err).Error("Error stopping scheduler")
			}
		}()
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        strconv.Itoa(cfg.Health.Port),
		Logger:      log,
		Checks: map[string]health.Checker{
			"projection": health.ProjectionCheck(e),
		},
	})
	if err := healthServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	apiServer := api.NewServer(projector, cfg.API, cfg.Metrics, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Start()
	}()

	healthServer.SetReady(true)
	log.WithFields(logrus.Fields{
		"api_port":    cfg.API.Port,
		"health_port": cfg.Health.Port,
		"cache":       cfg.Cache.Enabled,
	}).Info("Scoreline projector running")

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	healthServer.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error during API shutdown")
	}
	if err := healthServer.Shutdown(); err != nil {
		log.WithError(err).Error("Error during health server shutdown")
	}

	log.Info("Scoreline projector shut down")
	return nil
}
