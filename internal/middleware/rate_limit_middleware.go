package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimitConfig holds the fixed-window limiter settings.
type RateLimitConfig struct {
	// MaxRequests is the ceiling per Window; requests beyond it are
	// rejected, not queued.
	MaxRequests int
	// Window is the counting window.
	Window time.Duration
	// KeyPrefix namespaces the counter keys.
	KeyPrefix string
}

// DefaultSensitiveRouteConfig is the limit applied to the abuse-prone
// routes (signup, login, verify-email, contact).
func DefaultSensitiveRouteConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 100,
		Window:      15 * time.Minute,
		KeyPrefix:   "rl:sensitive",
	}
}

// RateLimiter tracks per-client request counts over a fixed window.
// Counters live in Redis when a client is supplied, which keeps the
// limit correct across processes; without one it falls back to
// in-process windows with the same reject-on-exceed semantics.
type RateLimiter struct {
	redisClient redis.UniversalClient

	mu      sync.Mutex
	windows map[string]*memoryWindow

	// now is swapped out in tests to advance windows.
	now func() time.Time
}

type memoryWindow struct {
	start time.Time
	count int64
}

// NewRateLimiter creates a limiter. redisClient may be nil.
func NewRateLimiter(redisClient redis.UniversalClient) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		windows:     make(map[string]*memoryWindow),
		now:         time.Now,
	}
}

// Limit returns a gin middleware enforcing cfg per client IP and route
// pattern.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := fmt.Sprintf("%s:%s:%s", cfg.KeyPrefix, clientIP, path)

		count, retryAfter, err := rl.hit(key, cfg.Window)
		if err != nil {
			// Redis failure: allow the request (fail-open) but log it.
			log.Printf("[RateLimiter] counter error for key %s: %v. Allowing request (fail-open).", key, err)
			c.Next()
			return
		}

		remaining := int64(cfg.MaxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", retryAfter))

		if count > int64(cfg.MaxRequests) {
			log.Printf("[RateLimiter] limit exceeded for IP=%s path=%s. Count=%d, Limit=%d",
				clientIP, path, count, cfg.MaxRequests)
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"error_type":  "rate_limited",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

// hit increments the counter for key and returns the new count plus the
// seconds until the window resets.
func (rl *RateLimiter) hit(key string, window time.Duration) (int64, int, error) {
	if rl.redisClient != nil {
		return rl.hitRedis(key, window)
	}
	return rl.hitMemory(key, window), int(window.Seconds()), nil
}

func (rl *RateLimiter) hitRedis(key string, window time.Duration) (int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	count, err := rl.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
			log.Printf("[RateLimiter] failed to set TTL for key %s: %v", key, err)
		}
	}

	ttl, _ := rl.redisClient.TTL(ctx, key).Result()
	retryAfter := int(ttl.Seconds())
	if retryAfter < 0 {
		retryAfter = int(window.Seconds())
	}
	return count, retryAfter, nil
}

func (rl *RateLimiter) hitMemory(key string, window time.Duration) int64 {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= window {
		w = &memoryWindow{start: now}
		rl.windows[key] = w
	}
	w.count++
	return w.count
}
