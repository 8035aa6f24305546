package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/gateway"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence/postgres"
	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest/handlers"
	"github.com/craftcms/commerce-paypal-checkout/internal/interfaces/rest/middleware"
	"github.com/craftcms/commerce-paypal-checkout/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"test_mode", cfg.Gateway.TestModeEnabled(),
		"payment_type", cfg.Gateway.ResolvedPaymentType(),
	)

	ctx := context.Background()
	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactionRepo := postgres.NewTransactionRepository(db.Pool)

	tokens := paypal.NewMemoryTokenStore()
	client := gateway.NewProviderClient(cfg.Gateway, tokens, logger)
	gw := gateway.New(cfg.Gateway, client, logger)

	checkoutService := application.NewCheckoutService(
		gw,
		transactionRepo,
		cfg.Gateway.ResolvedPaymentType(),
		logger,
	)

	h := handlers.NewHandlers(checkoutService, gw, logger)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
