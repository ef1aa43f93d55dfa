package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
		logger.WithName("api"),
	)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Connector: postgresql.NewConnector(cfg.Postgres),
		Logger:    appLogger,
		Config:    cfg,
	})

	srv := &http.Server{
		Addr:              cfg.API.Addr(),
		Handler:           app.Rest.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("http server listening", logger.NewField("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			appLogger.Error(errors.Wrapf(err, "serve http"))
			appLogger.Sync()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	appLogger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(errors.Wrapf(err, "shutdown http server"))
	}

	appLogger.Info("http server stopped")
}
