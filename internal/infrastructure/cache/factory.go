package cache

import (
	"context"
	"fmt"

	"github.com/erp/shipping/internal/domain/shipping"
	"github.com/erp/shipping/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SettingCache is a settings store with a cache in front
type SettingCache interface {
	shipping.SettingStore
	InvalidateAll(ctx context.Context) error
	Close() error
}

// SettingCacheFactory creates setting caches based on configuration
type SettingCacheFactory struct {
	redisConfig           config.RedisConfig
	cacheOptions          []SettingCacheOption
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*SettingCacheFactory)

// WithLogger sets the logger for the factory and the caches it builds
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *SettingCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *SettingCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// WithCacheOptions passes options through to every cache built
func WithCacheOptions(opts ...SettingCacheOption) FactoryOption {
	return func(f *SettingCacheFactory) {
		f.cacheOptions = append(f.cacheOptions, opts...)
	}
}

// NewSettingCacheFactory creates a new factory
func NewSettingCacheFactory(cfg config.RedisConfig, opts ...FactoryOption) *SettingCacheFactory {
	f := &SettingCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *SettingCacheFactory) options() []SettingCacheOption {
	return append([]SettingCacheOption{WithCacheLogger(f.logger)}, f.cacheOptions...)
}

// Create wraps store with Redis when configured and reachable, otherwise
// with an in-memory cache. An empty Redis host selects in-memory directly.
func (f *SettingCacheFactory) Create(store shipping.SettingStore) (SettingCache, error) {
	if f.redisConfig.Host == "" {
		f.logger.Info("Redis not configured, using in-memory setting cache")
		return NewInMemorySettingCache(store, f.options()...), nil
	}

	redisCache, err := NewRedisSettingCache(f.redisConfig, store, f.options()...)
	if err == nil {
		f.logger.Info("Using Redis setting cache", zap.String("addr", f.redisConfig.Addr()))
		return redisCache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for setting cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory setting cache. "+
		"Fixed-rate updates on other instances become visible only after the TTL.",
		zap.Error(err),
	)
	return NewInMemorySettingCache(store, f.options()...), nil
}
