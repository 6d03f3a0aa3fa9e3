// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/truvalue/truvalue-backend/internal/config"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	rl := NewRateLimiter("test", rate.Every(time.Minute), 2)
	r := rateLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1234").Code)

	w := doRequest(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterBucketsPerIP(t *testing.T) {
	rl := NewRateLimiter("test", rate.Every(time.Minute), 1)
	r := rateLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "10.0.0.1:1234").Code)

	// A different client gets its own bucket
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2:1234").Code)
}

func TestConfigureRateLimitsAppliesBudgets(t *testing.T) {
	ConfigureRateLimits(config.RateLimitConfig{
		GeneralPerSecond: 100,
		AuthPerMinute:    1,
		UploadPerMinute:  1,
		AnchorPerMinute:  1,
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/mint", AnchorRateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mint", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/mint", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
