// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tutorhive/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AvailabilityCacheClient is the dedicated client for availability-grid caching.
	AvailabilityCacheClient *redis.Client
)

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

// InitAvailabilityCache initializes the Redis client used to cache tutor
// availability reads.
func InitAvailabilityCache() {
	AvailabilityCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAvailabilityDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AvailabilityCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Availability Cache): %v", err)
	}
}

// GetAvailabilityCacheClient returns the availability cache client.
func GetAvailabilityCacheClient() *redis.Client {
	if AvailabilityCacheClient == nil {
		InitAvailabilityCache()
	}
	return AvailabilityCacheClient
}
