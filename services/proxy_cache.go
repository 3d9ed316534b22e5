package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// Proxied upstream payloads are memoized in Redis under a shared prefix so
// the admin cache-clear endpoint can sweep them without touching rate-limit
// counters.
const proxyCachePrefix = "proxy:"

// fetchCached returns the payload stored under key when it is still fresh,
// otherwise calls fill, stores the result for ttl, and returns it. Redis
// being down degrades to a plain upstream fetch.
func fetchCached[T any](ctx context.Context, key string, ttl time.Duration, fill func(context.Context) (T, error)) (T, *models.CacheInfo, error) {
	var zero T
	fullKey := proxyCachePrefix + key

	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(ctx, fullKey).Result()
		switch {
		case err == nil:
			var cached T
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				expiresAt := time.Now().Add(ttl)
				if remaining, ttlErr := config.RedisClient.TTL(ctx, fullKey).Result(); ttlErr == nil && remaining > 0 {
					expiresAt = time.Now().Add(remaining)
				}
				return cached, &models.CacheInfo{Hit: true, ExpiresAt: expiresAt}, nil
			}
			log.Printf("⚠️ [proxy.cache] Corrupt cache entry for %s, refetching", key)
		case err != redis.Nil:
			log.Printf("⚠️ [proxy.cache] Redis get failed for %s: %v", key, err)
		}
	}

	fresh, err := fill(ctx)
	if err != nil {
		return zero, nil, err
	}

	if config.RedisClient != nil {
		if raw, marshalErr := json.Marshal(fresh); marshalErr == nil {
			if setErr := config.RedisClient.Set(ctx, fullKey, raw, ttl).Err(); setErr != nil {
				log.Printf("⚠️ [proxy.cache] Redis set failed for %s: %v", key, setErr)
			}
		}
	}

	return fresh, &models.CacheInfo{Hit: false, ExpiresAt: time.Now().Add(ttl)}, nil
}

// ClearProxyCache removes every memoized proxy payload and returns how many
// keys were deleted.
func ClearProxyCache(ctx context.Context) (int64, error) {
	if config.RedisClient == nil {
		return 0, nil
	}

	var deleted int64
	iter := config.RedisClient.Scan(ctx, 0, proxyCachePrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		if err := config.RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, err
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}

	log.Printf("✅ [proxy.cache] Cleared %d cached upstream responses", deleted)
	return deleted, nil
}
