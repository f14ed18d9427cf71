package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/iho/moneyflow/internal/adapter/http"
	"github.com/iho/moneyflow/internal/adapter/http/handler"
	"github.com/iho/moneyflow/internal/infrastructure/config"
	"github.com/iho/moneyflow/internal/infrastructure/logger"
	"github.com/iho/moneyflow/internal/infrastructure/metrics"
	"github.com/iho/moneyflow/internal/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	m := metrics.New()

	// The ledger worker serializes every operation; it must outlive the
	// HTTP server so in-flight requests can still complete.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	led := ledger.New(ledger.Options{
		Log:       log,
		Metrics:   m,
		QueueSize: cfg.CommandQueueSize,
	})
	go led.Run(workerCtx)

	runner := ledger.NewRunner(led, cfg.SettleInterval, log)
	go runner.Run(workerCtx)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:   handler.NewCustomerHandler(led),
		AccountHandler:    handler.NewAccountHandler(led),
		TransferHandler:   handler.NewTransferHandler(led),
		SettlementHandler: handler.NewSettlementHandler(led),
		HealthHandler:     handler.NewHealthHandler(),
		Logger:            log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	stopWorker()
	log.Info().Msg("server stopped")
}
