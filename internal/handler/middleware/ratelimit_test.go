//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"physio-scheduler/internal/handler/middleware"
	"physio-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{BookingsPerMinute: 1, Burst: 2})

	router := gin.New()
	router.POST("/api/bookings", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = ip + ":51234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, send("10.0.0.1").Code)

	limited := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.JSONEq(t, `{"error":{"message":"Rate limit exceeded. Try again later."}}`, limited.Body.String())

	assert.Equal(t, http.StatusCreated, send("10.0.0.2").Code, "buckets are per client IP")
}

func TestRateLimiter_KeepsBucketAcrossRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{BookingsPerMinute: 1, Burst: 1})

	router := gin.New()
	router.POST("/api/bookings", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	counts := map[int]int{}
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "10.0.0.9:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		counts[w.Code]++
	}

	assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusTooManyRequests: 49}, counts)
}
