package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	r := gin.New()
	SetupRoutes(r, db)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRoutesRegistered(t *testing.T) {
	router := setupRouter(t)

	expected := []struct{ method, path string }{
		{"POST", "/api/auth/register"},
		{"POST", "/api/auth/login"},
		{"POST", "/api/auth/refresh"},
		{"GET", "/api/shops"},
		{"GET", "/api/shops/:id"},
		{"GET", "/api/shops/:id/slots"},
		{"GET", "/api/shops/:id/reviews"},
		{"POST", "/api/shops/:id/reviews"},
		{"GET", "/api/bookings"},
		{"POST", "/api/bookings"},
		{"GET", "/api/bookings/draft"},
		{"PUT", "/api/bookings/draft"},
		{"DELETE", "/api/bookings/draft"},
		{"GET", "/api/barber/shop"},
		{"PUT", "/api/barber/shop"},
		{"POST", "/api/barber/services"},
		{"PUT", "/api/barber/bookings/:id/status"},
		{"GET", "/api/admin/shops"},
		{"PUT", "/api/admin/shops/:id/approve"},
		{"DELETE", "/api/admin/shops/:id"},
		{"GET", "/api/admin/users"},
	}

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, e := range expected {
		if !registered[e.method+" "+e.path] {
			t.Errorf("route not registered: %s %s", e.method, e.path)
		}
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := setupRouter(t)

	cases := []struct{ method, path string }{
		{"GET", "/api/auth/profile"},
		{"GET", "/api/bookings"},
		{"GET", "/api/barber/shop"},
		{"GET", "/api/admin/shops"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}
