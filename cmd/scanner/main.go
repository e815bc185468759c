package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/valuebet-scanner/internal/cache"
	"github.com/cypherlabdev/valuebet-scanner/internal/config"
	"github.com/cypherlabdev/valuebet-scanner/internal/dedup"
	"github.com/cypherlabdev/valuebet-scanner/internal/feed"
	httpHandler "github.com/cypherlabdev/valuebet-scanner/internal/handler/http"
	"github.com/cypherlabdev/valuebet-scanner/internal/messaging"
	"github.com/cypherlabdev/valuebet-scanner/internal/odds"
	"github.com/cypherlabdev/valuebet-scanner/internal/service"
	"github.com/cypherlabdev/valuebet-scanner/internal/store"
	"github.com/cypherlabdev/valuebet-scanner/internal/valuation"
	"github.com/cypherlabdev/valuebet-scanner/pkg/elo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(os.Getenv("VALUEBET_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting valuebet-scanner")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create feed client
	feedClient, err := feed.NewClient(
		feed.ClientConfig{
			BaseURL:       cfg.Feed.BaseURL,
			OddsBaseURL:   cfg.Feed.OddsBaseURL,
			Token:         cfg.Feed.Token,
			Timeout:       cfg.Feed.Timeout,
			MaxConcurrent: cfg.Feed.MaxConcurrent,
			MaxAttempts:   cfg.Feed.MaxAttempts,
			BaseDelay:     cfg.Feed.BaseDelay,
			PageDelay:     cfg.Feed.PageDelay,
		},
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create feed client")
	}

	// Create store
	detector := dedup.NewDetector(cfg.Scanner.DedupWindow)
	pgStore, err := store.NewStore(ctx, cfg.Database.URL, detector, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Postgres")
	}
	defer pgStore.Close()
	logger.Info().Msg("connected to Postgres")

	// Create Redis cache
	redisCache := cache.NewRedisCache(
		cache.RedisCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer redisCache.Close()

	// Test Redis connection
	if err := redisCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create Kafka publisher
	publisher := messaging.NewKafkaPublisher(
		messaging.KafkaPublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		},
		logger,
	)
	defer publisher.Close()

	// Create pipeline components
	extractor := odds.NewExtractor(logger)
	ratingEngine := elo.NewEngine(elo.Params{
		Base:    cfg.Rating.Base,
		KFactor: cfg.Rating.KFactor,
	}, logger)

	valuationParams := cfg.ToValuationParams()
	strategies := []valuation.Strategy{
		valuation.NewMoneylineStrategy(valuationParams, logger),
		valuation.NewTotalsStrategy(valuationParams, logger),
	}

	leagues := make([]service.LeagueTarget, 0, len(cfg.Scanner.Leagues))
	for _, l := range cfg.Scanner.Leagues {
		leagues = append(leagues, service.LeagueTarget{ID: l.ID, Name: l.Name})
	}

	scanner := service.NewScanner(
		service.ScannerParams{
			SportID:   cfg.Scanner.SportID,
			DaysAhead: cfg.Scanner.DaysAhead,
			Leagues:   leagues,
			DailyCap:  cfg.Valuation.DailyCap,
		},
		feedClient,
		pgStore,
		redisCache,
		publisher,
		extractor,
		ratingEngine,
		strategies,
		logger,
	)
	logger.Info().Msg("scanner initialized")

	// Run pipeline on an interval
	go func() {
		runOnce(ctx, scanner, logger)

		ticker := time.NewTicker(cfg.Scanner.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce(ctx, scanner, logger)
			}
		}
	}()

	// Initialize HTTP handler
	betsHandler := httpHandler.NewBetsHandler(redisCache, logger)

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, pgStore, redisCache)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	betsHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop the pipeline loop
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// runOnce executes one pipeline pass and logs the outcome
func runOnce(ctx context.Context, scanner *service.Scanner, logger zerolog.Logger) {
	if _, err := scanner.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Error().Err(err).Msg("pipeline run failed")
	}
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "valuebet-scanner").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, pg *store.Store, redis *cache.RedisCache) {
	if err := pg.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Postgres unavailable"))
		return
	}
	if err := redis.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
