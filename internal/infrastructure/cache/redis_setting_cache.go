package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisSettingCache is a read-through cache in front of a settings store.
// Redis failures degrade to reading the store directly; rating never fails
// because the cache is down.
type RedisSettingCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	store      shipping.SettingStore
	opts       settingCacheOptions
}

// NewRedisSettingCache connects to Redis and wraps store
func NewRedisSettingCache(cfg config.RedisConfig, store shipping.SettingStore, opts ...SettingCacheOption) (*RedisSettingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := NewRedisSettingCacheWithClient(client, store, opts...)
	c.ownsClient = true
	return c, nil
}

// NewRedisSettingCacheWithClient wraps store using an existing client.
// The caller retains ownership of the client.
func NewRedisSettingCacheWithClient(client *redis.Client, store shipping.SettingStore, opts ...SettingCacheOption) *RedisSettingCache {
	c := &RedisSettingCache{
		client: client,
		store:  store,
		opts:   defaultSettingCacheOptions(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

func (c *RedisSettingCache) cacheKey(key string) string {
	return c.opts.keyPrefix + key
}

// GetSetting implements shipping.SettingReader
func (c *RedisSettingCache) GetSetting(ctx context.Context, key string) (string, bool, error) {
	cacheKey := c.cacheKey(key)
	logger := c.opts.logger.With(zap.String("key", key))

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var entry cachedSetting
		if err := json.Unmarshal(data, &entry); err == nil {
			logger.Debug("Cache hit for setting")
			return entry.Value, entry.Exists, nil
		}
		logger.Warn("Dropping corrupted setting cache entry")
		_ = c.client.Del(ctx, cacheKey)
	case errors.Is(err, redis.Nil):
		logger.Debug("Cache miss for setting")
	default:
		logger.Warn("Setting cache unavailable, reading store", zap.Error(err))
		return c.store.GetSetting(ctx, key)
	}

	value, exists, err := c.store.GetSetting(ctx, key)
	if err != nil {
		return "", false, err
	}

	data, err = json.Marshal(cachedSetting{Value: value, Exists: exists})
	if err != nil {
		return value, exists, nil
	}
	if err := c.client.Set(ctx, cacheKey, data, c.opts.ttl).Err(); err != nil {
		logger.Warn("Failed to cache setting", zap.Error(err))
	}
	return value, exists, nil
}

// SetSetting writes through to the store and drops the cached entry
func (c *RedisSettingCache) SetSetting(ctx context.Context, key, value string) error {
	if err := c.store.SetSetting(ctx, key, value); err != nil {
		return err
	}
	return c.Invalidate(ctx, key)
}

// Invalidate removes one key from the cache
func (c *RedisSettingCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.cacheKey(key)).Err(); err != nil {
		c.opts.logger.Error("Failed to invalidate setting",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to invalidate setting: %w", err)
	}
	return nil
}

// InvalidateAll removes every cached setting using SCAN
func (c *RedisSettingCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	var deleted int64

	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.opts.keyPrefix+"*", defaultScanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.opts.logger.Info("Invalidated setting cache", zap.Int64("deleted_count", deleted))
	return nil
}

// Close releases the client when the cache created it
func (c *RedisSettingCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

var _ shipping.SettingStore = (*RedisSettingCache)(nil)
