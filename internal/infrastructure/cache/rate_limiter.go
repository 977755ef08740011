package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/erp/shipping/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter counts requests per key in fixed windows
type RateLimiter interface {
	// Allow records one request for key and reports whether it is within the
	// limit, with the number of requests left in the current window.
	Allow(ctx context.Context, key string) (allowed bool, remaining int)
	Limit() int
	Window() time.Duration
	Close() error
}

// InMemoryRateLimiter is a fixed-window limiter local to one process
type InMemoryRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	now     func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

type window struct {
	count int
	start time.Time
}

// NewInMemoryRateLimiter starts a limiter whose expired windows are swept
// every two windows until Close.
func NewInMemoryRateLimiter(limit int, w time.Duration) *InMemoryRateLimiter {
	rl := &InMemoryRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  w,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go rl.cleanup(w * 2)
	return rl
}

func (rl *InMemoryRateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *InMemoryRateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, key)
		}
	}
}

// Allow implements RateLimiter
func (rl *InMemoryRateLimiter) Allow(_ context.Context, key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.start) >= rl.window {
		w = &window{start: now}
		rl.clients[key] = w
	}

	if w.count >= rl.limit {
		return false, 0
	}
	w.count++
	return true, rl.limit - w.count
}

// Limit implements RateLimiter
func (rl *InMemoryRateLimiter) Limit() int { return rl.limit }

// Window implements RateLimiter
func (rl *InMemoryRateLimiter) Window() time.Duration { return rl.window }

// Close stops the sweeper
func (rl *InMemoryRateLimiter) Close() error {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
	return nil
}

// RedisRateLimiter shares fixed-window counters between instances with
// INCR and a window-long expiry set on the first hit. When Redis errors the
// request is counted by a local limiter instead.
type RedisRateLimiter struct {
	client     *redis.Client
	ownsClient bool
	limit      int
	window     time.Duration
	keyPrefix  string
	fallback   *InMemoryRateLimiter
	logger     *zap.Logger
}

// NewRedisRateLimiterWithClient builds a limiter on an existing client.
// The caller retains ownership of the client.
func NewRedisRateLimiterWithClient(client *redis.Client, limit int, w time.Duration, logger *zap.Logger) *RedisRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRateLimiter{
		client:    client,
		limit:     limit,
		window:    w,
		keyPrefix: "shipping:ratelimit:",
		fallback:  NewInMemoryRateLimiter(limit, w),
		logger:    logger,
	}
}

// Allow implements RateLimiter
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, int) {
	redisKey := rl.keyPrefix + key

	var incr *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rl.window)
		return nil
	})
	if err != nil {
		rl.logger.Warn("Rate limit store unavailable, counting locally",
			zap.String("key", key),
			zap.Error(err),
		)
		return rl.fallback.Allow(ctx, key)
	}

	count := int(incr.Val())
	if count > rl.limit {
		return false, 0
	}
	return true, rl.limit - count
}

// Limit implements RateLimiter
func (rl *RedisRateLimiter) Limit() int { return rl.limit }

// Window implements RateLimiter
func (rl *RedisRateLimiter) Window() time.Duration { return rl.window }

// Close stops the fallback and closes the client if the limiter created it
func (rl *RedisRateLimiter) Close() error {
	_ = rl.fallback.Close()
	if rl.ownsClient {
		return rl.client.Close()
	}
	return nil
}

// NewRateLimiter picks the Redis limiter when Redis is configured and
// reachable, otherwise an in-memory one.
func NewRateLimiter(cfg config.RedisConfig, limit int, w time.Duration, logger *zap.Logger) RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Host == "" {
		logger.Info("Redis not configured, using in-memory rate limiter")
		return NewInMemoryRateLimiter(limit, w)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Warn("Redis unavailable, limits apply per instance",
			zap.Error(fmt.Errorf("failed to connect to Redis: %w", err)),
		)
		return NewInMemoryRateLimiter(limit, w)
	}

	rl := NewRedisRateLimiterWithClient(client, limit, w, logger)
	rl.ownsClient = true
	return rl
}
