package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/stock-data/internal/bootstrap"
	"github.com/muhammadchandra19/stock-data/pkg/config"
	"github.com/muhammadchandra19/stock-data/pkg/errors"
	"github.com/muhammadchandra19/stock-data/pkg/logger"
	"github.com/muhammadchandra19/stock-data/pkg/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
		logger.WithName("generator"),
	)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error(err)
		appLogger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger logger.Interface) error {
	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		return errors.Wrapf(err, "connect to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Database)
	}
	defer func() {
		if err := pgClient.Close(context.Background()); err != nil {
			appLogger.Error(errors.Wrapf(err, "close connection"))
		}
	}()

	appLogger.Info("connected to storage",
		logger.NewField("host", pgClient.Host()),
		logger.NewField("database", pgClient.DatabaseName()),
	)

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres: pgClient,
		Logger:   appLogger,
		Config:   cfg,
	})

	if err := app.Usecase.Generator.Run(ctx); err != nil {
		return err
	}

	appLogger.Info("shutdown complete")
	return nil
}
