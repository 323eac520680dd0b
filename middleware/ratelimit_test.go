package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.GET("/limited", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	router := limitedRouter(rl)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	router := limitedRouter(rl)

	var last int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exhausting the bucket, got %d", last)
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	router := limitedRouter(rl)

	req := httptest.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first IP: expected 200, got %d", w.Code)
	}

	// A different client has its own bucket
	req2 := httptest.NewRequest("GET", "/limited", nil)
	req2.RemoteAddr = "10.0.0.4:1234"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Errorf("second IP: expected 200, got %d", w2.Code)
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(60, time.Second)
	router := limitedRouter(rl)

	// Drain the bucket
	for i := 0; i < 60; i++ {
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "10.0.0.5:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	req := httptest.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 when drained, got %d", w.Code)
	}

	// 60 tokens/second refills at least one token quickly
	time.Sleep(50 * time.Millisecond)

	req2 := httptest.NewRequest("GET", "/limited", nil)
	req2.RemoteAddr = "10.0.0.5:1234"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Errorf("expected 200 after refill, got %d", w2.Code)
	}
}
