// File: telemed/utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"telemed/config"

	"github.com/go-redis/redis/v8"
)

const AuthCachePrefix = "authToken:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
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

// GetCacheClient returns the generic cache client, nil when uninitialized.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching,
// nil when uninitialized. Callers degrade to DB-backed verification.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CacheJSON stores a JSON-encoded value in the generic cache with the given
// TTL. A nil cache client is a no-op.
func CacheJSON(key string, value interface{}, ttl time.Duration) error {
	client := GetCacheClient()
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return client.Set(ctx, key, data, ttl).Err()
}

// GetCachedJSON loads a JSON-encoded value from the generic cache into dest.
// Reports whether a usable value was found; misses and decode failures both
// fall through to the source of truth.
func GetCachedJSON(key string, dest interface{}) bool {
	client := GetCacheClient()
	if client == nil {
		return false
	}
	ctx := context.Background()
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// InvalidateCache drops a key from the generic cache.
func InvalidateCache(key string) error {
	client := GetCacheClient()
	if client == nil {
		return nil
	}
	ctx := context.Background()
	return client.Del(ctx, key).Err()
}

// CacheAuthToken stores the token hash for a user with a sliding TTL. A nil
// cache client is a no-op; verification falls through to the database.
func CacheAuthToken(userID, tokenHash string) error {
	client := GetAuthCacheClient()
	if client == nil {
		return nil
	}
	ctx := context.Background()
	return client.Set(ctx, AuthCachePrefix+userID, tokenHash, time.Hour).Err()
}

// RevokeAuthToken drops the cached token hash, forcing re-authentication.
func RevokeAuthToken(userID string) error {
	client := GetAuthCacheClient()
	if client == nil {
		return nil
	}
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+userID).Err()
}
