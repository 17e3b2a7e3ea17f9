package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mindwell/intake-platform/internal/api/router"
	"github.com/mindwell/intake-platform/internal/catalog"
	appconfig "github.com/mindwell/intake-platform/internal/config"
	"github.com/mindwell/intake-platform/internal/http/handlers"
	"github.com/mindwell/intake-platform/internal/intake"
	"github.com/mindwell/intake-platform/internal/notify"
	"github.com/mindwell/intake-platform/internal/observability/metrics"
	"github.com/mindwell/intake-platform/internal/payments"
	"github.com/mindwell/intake-platform/internal/search"
	"github.com/mindwell/intake-platform/pkg/logging"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting intake-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics
	registry := prometheus.NewRegistry()
	intakeMetrics := metrics.NewIntakeMetrics(registry)
	searchMetrics := metrics.NewSearchMetrics(registry)

	// Domain services
	cat := catalog.Default()
	processor := payments.NewProcessor(cfg.PaymentDelay, cfg.PaymentDeclineRate, logger)
	notifier := notify.NewService(notify.NewLogSender(logger), cfg.NotifyInbox, cfg.PracticeName, logger)
	sessions := intake.NewRegistry(intake.Deps{
		Catalog:   cat,
		Processor: processor,
		Notifier:  notifier,
		Metrics:   intakeMetrics,
		Logger:    logger,
		Options: intake.Options{
			SubmitDelay:       cfg.SubmitDelay,
			ResetDelay:        cfg.CompletionResetDelay,
			SubmitFailureRate: cfg.SubmitFailureRate,
			MaxSubmitAttempts: cfg.MaxSubmitAttempts,
		},
	})
	index := search.NewIndex(cat.Documents)

	// Router
	r := router.New(&router.Config{
		Logger:             logger,
		Intake:             handlers.NewIntakeHandler(sessions, logger),
		Search:             handlers.NewSearchHandler(index, searchMetrics, logger),
		LiveSearch:         handlers.NewLiveSearchHandler(index, cfg.SearchDebounce, searchMetrics, logger),
		Therapists:         handlers.NewTherapistsHandler(cat, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
