package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func get(router *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		defer rl.Stop()
		router := rateLimitedRouter(rl)

		for i := 0; i < 10; i++ {
			w := get(router, "/test", map[string]string{"X-Forwarded-For": "192.168.1.1"})
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("blocks requests over the burst", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 2)
		defer rl.Stop()
		router := rateLimitedRouter(rl)

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = get(router, "/test", map[string]string{"X-Forwarded-For": "192.168.1.2"})
		}
		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "1", last.Header().Get("Retry-After"))
	})

	t.Run("clients are limited separately", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1)
		defer rl.Stop()
		router := rateLimitedRouter(rl)

		assert.Equal(t, http.StatusOK, get(router, "/test", map[string]string{"X-Forwarded-For": "192.168.1.3"}).Code)
		assert.Equal(t, http.StatusOK, get(router, "/test", map[string]string{"X-Forwarded-For": "192.168.1.4"}).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(router, "/test", map[string]string{"X-Forwarded-For": "192.168.1.3"}).Code)
	})

	t.Run("api keys sharing a prefix share a bucket", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1)
		defer rl.Stop()
		router := rateLimitedRouter(rl)

		first := map[string]string{constants.APIKeyHeader: "cwk_abcdefgh_one", "X-Forwarded-For": "10.0.0.1"}
		second := map[string]string{constants.APIKeyHeader: "cwk_abcdefgh_two", "X-Forwarded-For": "10.0.0.2"}
		assert.Equal(t, http.StatusOK, get(router, "/test", first).Code)
		assert.Equal(t, http.StatusTooManyRequests, get(router, "/test", second).Code)
	})

	t.Run("health checks are exempt", func(t *testing.T) {
		rl := NewRateLimiter(0.001, 1)
		defer rl.Stop()
		router := rateLimitedRouter(rl)

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, get(router, "/health", map[string]string{"X-Forwarded-For": "192.168.1.5"}).Code)
		}
	})
}
