package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/entities"
	"moturial_payments/internal/usecase/interfaces"

	json "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const (
	resultKeyPrefix = "payments:result:"
	defaultTTL      = 24 * time.Hour
)

var ErrNonFinalResult = errors.New("only final payment results can be cached")

// redisAPI is the part of *redis.Client the cache uses.
type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisResultCache stores the JSON of finalized payment results keyed by
// external id. Stored bytes are returned as-is, so repeated polls decode the
// same document.
type RedisResultCache struct {
	client redisAPI
	ttl    time.Duration
}

var _ interfaces.IPaymentResultCache = (*RedisResultCache)(nil)

func NewRedisResultCache(client redisAPI, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisResultCache{client: client, ttl: ttl}
}

func (c *RedisResultCache) Get(ctx context.Context, externalID string) (entities.PaymentResult, bool, error) {
	data, err := c.client.Get(ctx, resultKeyPrefix+externalID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.PaymentResult{}, false, nil
	}
	if err != nil {
		return entities.PaymentResult{}, false, fmt.Errorf("[cache] failed to read payment result: %w", err)
	}

	var res entities.PaymentResult
	if err := json.Unmarshal(data, &res); err != nil {
		return entities.PaymentResult{}, false, fmt.Errorf("[cache] failed to unmarshal payment result: %w", err)
	}
	return res, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, result entities.PaymentResult) error {
	if !result.Status.IsFinal() {
		return ErrNonFinalResult
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("[cache] failed to marshal payment result: %w", err)
	}
	if err := c.client.Set(ctx, resultKeyPrefix+result.ExternalID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("[cache] failed to store payment result: %w", err)
	}
	log.Printf("[payment][cache] stored result external_id=%s status=%s ttl=%s", result.ExternalID, result.Status, c.ttl)
	return nil
}

// NewRedisClientFromEnv builds a client for REDIS_ADDR. ok is false when no
// address is configured and the cache should stay disabled.
func NewRedisClientFromEnv() (client *redis.Client, ok bool) {
	addr := config.GetenvDefault("REDIS_ADDR", "")
	if addr == "" {
		return nil, false
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     config.GetenvDefault("REDIS_PASSWORD", ""),
		DB:           0,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}), true
}

// ResultTTLFromEnv reads PAYMENT_RESULT_CACHE_TTL (e.g. "24h").
func ResultTTLFromEnv() time.Duration {
	raw := config.GetenvDefault("PAYMENT_RESULT_CACHE_TTL", "")
	if raw == "" {
		return defaultTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("[config] ignoring invalid PAYMENT_RESULT_CACHE_TTL=%q", raw)
		return defaultTTL
	}
	return ttl
}
