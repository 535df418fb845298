package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWithConfig(t *testing.T) {
	e := echo.New()
	middleware := RateLimiterWithConfig(2, 4)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Initial burst is allowed
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.2:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Next request trips the limiter
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// SendError writes the response and returns nil
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterDifferentIPs(t *testing.T) {
	e := echo.New()
	middleware := RateLimiterWithConfig(5, 10)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Different IPs get independent limits
	ips := []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"}

	for _, ip := range ips {
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = ip
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, handler(c), "request %d for IP %s should succeed", i, ip)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	}
}

func TestVisitorPrune(t *testing.T) {
	limiter := newIPRateLimiter(5, 10)

	limiter.allow("stale-ip")
	limiter.allow("fresh-ip")

	limiter.mu.Lock()
	limiter.visitors["stale-ip"].lastSeen = time.Now().Add(-5 * time.Minute)
	limiter.mu.Unlock()

	limiter.prune(visitorMaxIdle)

	limiter.mu.Lock()
	_, staleExists := limiter.visitors["stale-ip"]
	_, freshExists := limiter.visitors["fresh-ip"]
	limiter.mu.Unlock()

	assert.False(t, staleExists, "stale visitor should be removed")
	assert.True(t, freshExists, "recent visitor should remain")
}
