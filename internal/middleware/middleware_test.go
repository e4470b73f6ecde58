package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	logging.SetLogger(zap.NewNop())
	m, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens(t)
	var seen auth.UserClaims
	h := AuthMiddleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.GetUserClaims(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic Zm9vOmJhcg==", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/fleet", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "error", body["status"])
		})
	}

	token, err := tokens.Issue("user-7", "crew@blueridge.example", []string{"Crew"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fleet", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-7", seen.UserID())
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(constants.RoleMaintenance)(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		claims     auth.UserClaims
		wantStatus int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"wrong role", &auth.Claims{RoleValues: []string{"Crew"}}, http.StatusForbidden},
		{"matching role", &auth.Claims{RoleValues: []string{"Maintenance"}}, http.StatusOK},
		{"admin", &auth.Claims{RoleValues: []string{"Admin"}}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.SetUserClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	h := NewRateLimiter(1, 2).Middleware(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:4411"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Loopback is never limited.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestIDAndMetrics(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware, MetricsMiddleware(reg))
	var requestID string
	r.Get("/fleet/{id}", func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/fleet/abc", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/fleet/{id}", "GET", "204")))
}

func TestRecoverer(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddlewaresWithoutRegistry(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	h := InFlightMiddleware(nil)(MetricsMiddleware(nil)(http.HandlerFunc(okHandler)))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInFlightMiddlewareReleasesGauge(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	var during float64
	h := InFlightMiddleware(reg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(reg.HTTPRequestsInFlight.WithLabelValues(http.MethodGet))
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 1.0, during)
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.HTTPRequestsInFlight.WithLabelValues(http.MethodGet)))
}
