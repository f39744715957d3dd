package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"finitefield.org/opai-member/internal/member/catalog"
	"finitefield.org/opai-member/internal/member/config"
	"finitefield.org/opai-member/internal/member/httpserver"
	"finitefield.org/opai-member/internal/member/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("member")

	catalogService := catalog.NewStaticService()
	if _, err := catalogService.Catalog(ctx); err != nil {
		logger.Fatal("failed to decode catalog", zap.Error(err))
	}

	var metrics *observability.Metrics
	if cfg.EnableMetrics {
		metrics = observability.NewMetrics()
	}

	srv := httpserver.New(httpserver.Config{
		Address:          cfg.Server.Addr,
		Environment:      cfg.Environment,
		Logger:           logger,
		Metrics:          metrics,
		CatalogService:   catalogService,
		CSRFCookieName:   cfg.CSRF.CookieName,
		CSRFCookieSecure: cfg.CSRF.Secure,
		CSRFHeaderName:   cfg.CSRF.HeaderName,
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		IdleTimeout:      cfg.Server.IdleTimeout,
		RequestTimeout:   cfg.Server.RequestTimeout,
	})

	logger.Info("member dashboard starting",
		zap.String("environment", cfg.Environment),
		zap.Bool("metrics", cfg.EnableMetrics),
	)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(sigCtx, srv, cfg.Server.ShutdownTimeout, logger); err != nil {
		logger.Error("member dashboard stopped with error", zap.Error(err))
		stop()
		_ = baseLogger.Sync()
		os.Exit(1)
	}
	logger.Info("member dashboard stopped")
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts it
// down within shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("member dashboard listening", zap.String("addr", srv.Addr))

	var runErr error
	select {
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("graceful shutdown failed: %w", err))
	}
	return runErr
}
