package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(limiter *RateLimiter, cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Limit(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func doLogin(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_RejectsBeyondLimit(t *testing.T) {
	limiter := NewRateLimiter(nil)
	cfg := RateLimitConfig{MaxRequests: 5, Window: 15 * time.Minute, KeyPrefix: "rl:test"}
	router := setupRateLimitRouter(limiter, cfg)

	for i := 0; i < 5; i++ {
		w := doLogin(router)
		assert.Equal(t, http.StatusOK, w.Code, "request %d within the limit must pass", i+1)
	}

	w := doLogin(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_WindowExpiryResetsCounter(t *testing.T) {
	limiter := NewRateLimiter(nil)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	cfg := RateLimitConfig{MaxRequests: 2, Window: 15 * time.Minute, KeyPrefix: "rl:test"}
	router := setupRateLimitRouter(limiter, cfg)

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
	assert.Equal(t, http.StatusOK, doLogin(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, doLogin(router).Code)

	// A fresh window starts once the old one has fully elapsed.
	current = current.Add(15 * time.Minute)
	assert.Equal(t, http.StatusOK, doLogin(router).Code)
}

func TestRateLimiter_SeparateClientsSeparateCounters(t *testing.T) {
	limiter := NewRateLimiter(nil)
	cfg := RateLimitConfig{MaxRequests: 1, Window: 15 * time.Minute, KeyPrefix: "rl:test"}
	router := setupRateLimitRouter(limiter, cfg)

	first := httptest.NewRequest(http.MethodPost, "/login", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	assert.Equal(t, http.StatusOK, w1.Code)

	exhausted := httptest.NewRequest(http.MethodPost, "/login", nil)
	exhausted.RemoteAddr = "10.0.0.1:5678"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, exhausted)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code, "same IP, different port shares the counter")

	other := httptest.NewRequest(http.MethodPost, "/login", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, other)
	assert.Equal(t, http.StatusOK, w3.Code, "a different IP gets its own counter")
}
