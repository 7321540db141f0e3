package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/internal/cron"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/internal/payroll"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/config"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/logger"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/metrics"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/redis"
)

const lockNameFormat = "gatekeeper-worker:%s"

func main() {
	logg := logger.New(logger.Options{ServiceName: "gatekeeper-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "gatekeeper-worker"

	logg = logger.New(logger.Options{
		ServiceName: "gatekeeper-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	payrollRepo := payroll.NewRepository(dbClient.DB())
	gatekeeper, err := payroll.NewGatekeeper(payroll.GatekeeperParams{
		Logger:   logg,
		Payments: payrollRepo,
		Trips:    payrollRepo,
		Writer:   payrollRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create payroll gatekeeper", err)
		os.Exit(1)
	}

	metricsCollector := metrics.NewCronJobMetrics(prometheus.DefaultRegisterer)
	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey(lockName(cfg.App.Env)), cfg.Gatekeeper.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create worker lock", err)
		os.Exit(1)
	}

	registry := cron.NewRegistry(gatekeeper)
	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  metricsCollector,
		Interval: cfg.Gatekeeper.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting gatekeeper worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "gatekeeper worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "gatekeeper worker shutting down gracefully")
}

func lockName(env string) string {
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf(lockNameFormat, env)
}
