package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS())
	reached := false
	router.Any("/api/v1/scenes", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/scenes", nil)
	req.Header.Set("Origin", "https://studio.example.com")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, reached, "preflight should short-circuit before the handler")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSPassesRequestsThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS())
	router.GET("/api/v1/scenes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// With and without an Origin header the request reaches the handler and
	// carries the wildcard origin back
	for _, origin := range []string{"https://studio.example.com", ""} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/scenes", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func newSizeLimitedRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	drain := func(c *gin.Context) {
		n, err := io.Copy(io.Discard, c.Request.Body)
		if err != nil {
			// MaxBytesReader trips here for chunked uploads that lied about
			// their length
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bytes": n})
	}
	router.POST("/ingest", drain)
	router.GET("/ingest", drain)
	return router
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		method     string
		bodyBytes  int
		wantStatus int
	}{
		{"default limit allows small bodies", RequestSizeLimit(), "POST", 4 * 1024, http.StatusOK},
		{"default limit allows exactly one megabyte", RequestSizeLimit(), "POST", 1024 * 1024, http.StatusOK},
		{"default limit rejects oversized bodies", RequestSizeLimit(), "POST", 1024*1024 + 1, http.StatusRequestEntityTooLarge},
		{"custom limit allows bodies under it", RequestSizeLimitWithSize(64 * 1024), "POST", 32 * 1024, http.StatusOK},
		{"custom limit rejects bodies over it", RequestSizeLimitWithSize(64 * 1024), "POST", 128 * 1024, http.StatusRequestEntityTooLarge},
		{"reads are never limited", RequestSizeLimitWithSize(1024), "GET", 64 * 1024, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSizeLimitedRouter(tt.middleware)

			body := strings.NewReader(strings.Repeat("x", tt.bodyBytes))
			req := httptest.NewRequest(tt.method, "/ingest", body)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func newRateLimitedRouter(rps, burst int) (*gin.Engine, func()) {
	limiters := &sync.Map{}
	stop := make(chan struct{})
	once := &sync.Once{}

	router := gin.New()
	router.Use(PerClientRateLimit(limiters, stop, once, rps, burst))
	router.GET("/api/v1/sessions/s-1", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, func() { close(stop) }
}

func fireFrom(router *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s-1", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestPerClientRateLimitBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, stop := newRateLimitedRouter(1, 4)
	defer stop()

	var allowed, limited int
	for i := 0; i < 10; i++ {
		switch fireFrom(router, "203.0.113.7:4791") {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			limited++
		}
	}

	// Back-to-back requests drain the burst, then get rejected
	assert.GreaterOrEqual(t, allowed, 4)
	assert.Greater(t, limited, 0)
	assert.Equal(t, 10, allowed+limited)
}

func TestPerClientRateLimitPacedRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// A token refills every 20ms; pacing at 30ms stays under the limit even
	// with a burst of one
	router, stop := newRateLimitedRouter(50, 1)
	defer stop()

	for i := 0; i < 4; i++ {
		if i > 0 {
			time.Sleep(30 * time.Millisecond)
		}
		assert.Equal(t, http.StatusOK, fireFrom(router, "203.0.113.7:4791"), "request %d", i)
	}
}

func TestPerClientRateLimitIsolatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router, stop := newRateLimitedRouter(1, 1)
	defer stop()

	// The first client exhausts its bucket
	assert.Equal(t, http.StatusOK, fireFrom(router, "198.51.100.23:9000"))
	assert.Equal(t, http.StatusTooManyRequests, fireFrom(router, "198.51.100.23:9000"))

	// A different address gets a fresh bucket
	assert.Equal(t, http.StatusOK, fireFrom(router, "198.51.100.99:9000"))
}

func TestCleanupOldRateLimiters(t *testing.T) {
	// The sweep ticks every 5 minutes, so within this test it never fires;
	// we only verify the loop starts and stops cleanly.
	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})

	stale := &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Second), 1)}
	stale.lastSeen.Store(time.Now().Add(-2 * time.Hour).UnixNano())
	rateLimiters.Store("198.51.100.23", stale)

	go cleanupOldRateLimiters(rateLimiters, cleanupStop)

	time.Sleep(10 * time.Millisecond)
	close(cleanupStop)

	// Entry survives because no sweep has run yet
	_, ok := rateLimiters.Load("198.51.100.23")
	assert.True(t, ok)
}
