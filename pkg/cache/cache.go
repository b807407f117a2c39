// Package cache wraps a shared Redis client. Every helper is nil-safe: when
// Redis is unreachable the client stays nil and reads miss, writes no-op.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitralapp/vitral/config"
)

var RDB *redis.Client
var Ctx = context.Background()

// CatalogPrefix namespaces every cached catalog read (models, glass types,
// solutions). FlushCatalog invalidates the whole namespace after a seed run.
const CatalogPrefix = "catalog:"

// Connect initialises the Redis client and verifies the connection with a ping.
// Returns an error so the caller can react (log warning, fall back, or abort).
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so Get/Set/Del no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}

	return true
}

// Set stores value in Redis under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Del removes one or more keys from Redis.
func Del(keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}

// Forget is an alias for Del (Laravel-style).
func Forget(key string) error {
	return Del(key)
}

// FlushPrefix deletes every key under prefix using SCAN, so it is safe on a
// shared Redis instance where FLUSHDB would be destructive.
func FlushPrefix(ctx context.Context, prefix string) (int64, error) {
	if RDB == nil {
		return 0, nil
	}

	var deleted int64
	iter := RDB.Scan(ctx, 0, prefix+"*", 200).Iterator()
	keys := make([]string, 0, 200)

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == cap(keys) {
			n, err := RDB.Del(ctx, keys...).Result()
			deleted += n
			if err != nil {
				return deleted, fmt.Errorf("cache: flush %q: %w", prefix, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("cache: scan %q: %w", prefix, err)
	}
	if len(keys) > 0 {
		n, err := RDB.Del(ctx, keys...).Result()
		deleted += n
		if err != nil {
			return deleted, fmt.Errorf("cache: flush %q: %w", prefix, err)
		}
	}
	return deleted, nil
}

// FlushCatalog invalidates all cached catalog reads. Called after a seed run
// mutates the catalog tables.
func FlushCatalog(ctx context.Context) (int64, error) {
	return FlushPrefix(ctx, CatalogPrefix)
}
