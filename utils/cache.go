// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"mltransport/config"
)

var (
	// DedupeClient is the dedicated client for notification dedupe markers.
	DedupeClient *redis.Client
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
)

// InitDedupeStore initializes the Redis client backing the per-order
// notification markers. Markers must survive process restarts, so this is
// a dedicated DB rather than in-process memory.
func InitDedupeStore() {
	DedupeClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDedupeDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DedupeClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Dedupe): %v", err)
	}
}

// GetDedupeClient returns the dedupe store client.
func GetDedupeClient() *redis.Client {
	if DedupeClient == nil {
		InitDedupeStore()
	}
	return DedupeClient
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
