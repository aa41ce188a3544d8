package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"suraksha/internal/api/middleware"
	"suraksha/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		requests      int
		window        int
		calls         int
		expectedCodes []int
		clientIP      string
	}{
		{
			name:          "under limit",
			requests:      10,
			window:        1,
			calls:         3,
			expectedCodes: []int{200, 200, 200},
			clientIP:      "192.168.1.1",
		},
		{
			name:          "at limit",
			requests:      2,
			window:        1,
			calls:         2,
			expectedCodes: []int{200, 200},
			clientIP:      "192.168.1.2",
		},
		{
			name:          "over limit",
			requests:      2,
			window:        1,
			calls:         3,
			expectedCodes: []int{200, 200, 429},
			clientIP:      "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.RateLimit.Requests = tt.requests
			cfg.RateLimit.Window = tt.window
			cfg.RateLimit.Burst = tt.requests

			router := gin.New()
			router.Use(middleware.NewRateLimiter(cfg).Middleware())
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			for i := 0; i < tt.calls; i++ {
				w := httptest.NewRecorder()
				req, _ := http.NewRequest("GET", "/test", nil)
				req.RemoteAddr = tt.clientIP + ":12345"
				router.ServeHTTP(w, req)
				assert.Equal(t, tt.expectedCodes[i], w.Code, "request %d", i+1)
			}
		})
	}
}

func TestRateLimiterHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.RateLimit.Requests = 5
	cfg.RateLimit.Window = 60
	cfg.RateLimit.Burst = 5

	router := gin.New()
	router.Use(middleware.NewRateLimiter(cfg).Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}
