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

	"github.com/sirupsen/logrus"
	"github.com/yyu399/goal-model-v3.1/config"
	httpDelivery "github.com/yyu399/goal-model-v3.1/internal/delivery/http"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
	"github.com/yyu399/goal-model-v3.1/internal/infrastructure/cache"
	"github.com/yyu399/goal-model-v3.1/internal/logging"
	"github.com/yyu399/goal-model-v3.1/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	logger.WithFields(logrus.Fields{
		"version":     httpDelivery.Version,
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"cache":       cfg.Cache.Type,
		"cache_ttl":   cfg.Cache.TTL.String(),
		"max_batch":   cfg.Evaluation.MaxBatchSize,
	}).Info("Starting in-play analyzer")

	// Initialize infrastructure dependencies
	resultCache, closeCache, err := newCache(cfg.Cache)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize cache")
	}
	defer closeCache()

	// Initialize usecase layer
	evaluationService := usecase.NewEvaluationService(
		resultCache,
		logger,
		usecase.EvaluationServiceConfig{
			CacheTTL:     cfg.Cache.TTL,
			MaxBatchSize: cfg.Evaluation.MaxBatchSize,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(evaluationService, domain.Locale(cfg.Evaluation.DefaultLang))

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.WithField("signal", sig.String()).Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
		return
	}
	logger.Info("Server stopped")
}

// newCache builds the result cache named by the configuration. The returned
// repository is nil when caching is disabled.
func newCache(cfg config.CacheConfig) (domain.CacheRepository, func(), error) {
	switch cfg.Type {
	case "memory":
		c := cache.NewMemoryCache(0)
		return c, func() { _ = c.Close() }, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c, err := cache.NewRedisCacheFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() { _ = c.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}
