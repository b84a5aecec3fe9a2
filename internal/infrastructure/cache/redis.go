package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/config"
)

// KeyPrefix namespaces result cache keys in redis
const KeyPrefix = "haptics:classify:"

// NewRedisClient creates a redis client and verifies the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Redis is a result cache shared between service replicas.
// Entry count is bounded by the server's maxmemory policy, not by this type.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis cache whose entries expire after ttl
func NewRedis(client *redis.Client, ttl time.Duration) repository.ResultCache {
	return &Redis{client: client, ttl: ttl}
}

// Key derives the redis key for a raw input text
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return KeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached result for the exact text
func (r *Redis) Get(ctx context.Context, text string) (*entity.HapticResult, bool, error) {
	data, err := r.client.Get(ctx, Key(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var result entity.HapticResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &result, true, nil
}

// Set stores result under the exact text
func (r *Redis) Set(ctx context.Context, text string, result *entity.HapticResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := r.client.Set(ctx, Key(text), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Len is not tracked for redis
func (r *Redis) Len(_ context.Context) int {
	return -1
}
