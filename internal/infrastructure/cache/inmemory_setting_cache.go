package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erp/shipping/internal/domain/shipping"
	"go.uber.org/zap"
)

type cacheEntry struct {
	value     cachedSetting
	expiresAt time.Time
}

func (e *cacheEntry) isExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// InMemorySettingCache is the single-instance counterpart of RedisSettingCache.
// Entries are not shared across processes.
type InMemorySettingCache struct {
	entries sync.Map // map[string]*cacheEntry
	store   shipping.SettingStore
	opts    settingCacheOptions
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// NewInMemorySettingCache wraps store and starts the expiry sweeper
func NewInMemorySettingCache(store shipping.SettingStore, opts ...SettingCacheOption) *InMemorySettingCache {
	c := &InMemorySettingCache{
		store:  store,
		opts:   defaultSettingCacheOptions(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	go c.cleanupExpired()

	return c
}

// GetSetting implements shipping.SettingReader
func (c *InMemorySettingCache) GetSetting(ctx context.Context, key string) (string, bool, error) {
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired(time.Now()) {
			atomic.AddInt64(&c.hits, 1)
			return entry.value.Value, entry.value.Exists, nil
		}
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	value, exists, err := c.store.GetSetting(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.entries.Store(key, &cacheEntry{
		value:     cachedSetting{Value: value, Exists: exists},
		expiresAt: time.Now().Add(c.opts.ttl),
	})
	return value, exists, nil
}

// SetSetting writes through to the store and drops the cached entry
func (c *InMemorySettingCache) SetSetting(ctx context.Context, key, value string) error {
	if err := c.store.SetSetting(ctx, key, value); err != nil {
		return err
	}
	c.entries.Delete(key)
	return nil
}

// InvalidateAll drops every entry
func (c *InMemorySettingCache) InvalidateAll(context.Context) error {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
	return nil
}

// GetStats returns hit and miss counters
func (c *InMemorySettingCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of cached entries, expired ones included
func (c *InMemorySettingCache) Count() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close stops the sweeper
func (c *InMemorySettingCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *InMemorySettingCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						c.opts.logger.Error("Panic in setting cache cleanup", zap.Any("panic", r))
					}
				}()
				c.doCleanup(time.Now())
			}()
		}
	}
}

func (c *InMemorySettingCache) doCleanup(now time.Time) {
	removed := 0
	c.entries.Range(func(key, value any) bool {
		if value.(*cacheEntry).isExpired(now) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.opts.logger.Debug("Cleaned up expired setting cache entries", zap.Int("removed", removed))
	}
}

var _ shipping.SettingStore = (*InMemorySettingCache)(nil)
