package cache

import (
	"time"

	"go.uber.org/zap"
)

const (
	defaultSettingTTL      = 5 * time.Minute
	defaultCleanupInterval = 30 * time.Second
	defaultScanBatchSize   = 100
	defaultKeyPrefix       = "shipping:setting:"
)

// cachedSetting is what a cache holds for one settings key.
// Exists=false records a miss so unset fixed rates are not re-read every call.
type cachedSetting struct {
	Value  string `json:"value"`
	Exists bool   `json:"exists"`
}

type settingCacheOptions struct {
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

func defaultSettingCacheOptions() settingCacheOptions {
	return settingCacheOptions{
		ttl:       defaultSettingTTL,
		keyPrefix: defaultKeyPrefix,
		logger:    zap.NewNop(),
	}
}

// SettingCacheOption is a functional option shared by the setting caches
type SettingCacheOption func(*settingCacheOptions)

// WithTTL sets how long a lookup stays cached; zero keeps the default
func WithTTL(ttl time.Duration) SettingCacheOption {
	return func(o *settingCacheOptions) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithKeyPrefix sets the redis key prefix
func WithKeyPrefix(prefix string) SettingCacheOption {
	return func(o *settingCacheOptions) {
		if prefix != "" {
			o.keyPrefix = prefix
		}
	}
}

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) SettingCacheOption {
	return func(o *settingCacheOptions) {
		o.logger = logger
	}
}
