package cache

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
	"github.com/ressKim-io/text-haptics/api-service/internal/infrastructure/config"
)

// New builds the configured result cache. The redis client is returned so the
// caller can health-check and close it; it is nil for the in-process cache.
// An unreachable redis falls back to the in-process cache.
func New(cfg *config.Config, log *zap.Logger) (repository.ResultCache, *redis.Client) {
	if cfg.Cache.Backend == config.CacheBackendRedis {
		client, err := NewRedisClient(&cfg.Redis)
		if err == nil {
			log.Info("Connected to Redis, using shared result cache", zap.Duration("ttl", cfg.Cache.TTL))
			log.Warn("Shared result cache ignores HAPTICS_CACHE_MAX_SIZE; size is bounded by the redis maxmemory policy",
				zap.Int("max_size", cfg.Cache.MaxSize),
			)
			return NewRedis(client, cfg.Cache.TTL), client
		}
		log.Warn("Failed to connect to Redis, falling back to in-process cache", zap.Error(err))
	}

	log.Info("Using in-process result cache",
		zap.Int("max_size", cfg.Cache.MaxSize),
		zap.Duration("ttl", cfg.Cache.TTL),
	)
	return NewMemory(cfg.Cache.MaxSize, cfg.Cache.TTL), nil
}
