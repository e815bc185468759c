package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/valuebet-scanner/internal/models"
)

// RedisCache caches accepted value bets in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// betKey builds the Redis key: bet:{event_id}:{bet_type}:{selection}:{handicap}
func betKey(bet *models.ValueBet) string {
	return fmt.Sprintf("bet:%s:%s:%s:%g", bet.EventID, bet.BetType, bet.Selection, bet.Handicap)
}

// Set caches one accepted bet
func (c *RedisCache) Set(ctx context.Context, bet *models.ValueBet) error {
	key := betKey(bet)

	data, err := json.Marshal(bet)
	if err != nil {
		return fmt.Errorf("failed to marshal bet: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached value bet")

	return nil
}

// SetBatch caches multiple accepted bets in one pipeline
func (c *RedisCache) SetBatch(ctx context.Context, bets []*models.ValueBet) error {
	if len(bets) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()

	for _, bet := range bets {
		data, err := json.Marshal(bet)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal bet")
			continue
		}
		pipe.Set(ctx, betKey(bet), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(bets)).
		Msg("cached batch of value bets")

	return nil
}

// GetByEvent retrieves all cached bets for an event
func (c *RedisCache) GetByEvent(ctx context.Context, eventID string) ([]*models.ValueBet, error) {
	pattern := fmt.Sprintf("bet:%s:*", eventID)

	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	bets := make([]*models.ValueBet, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var bet models.ValueBet
		if err := json.Unmarshal(data, &bet); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal bet")
			continue
		}

		bets = append(bets, &bet)
	}

	return bets, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
