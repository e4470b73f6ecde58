package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"flightops360/hangar/internal/api"
	"flightops360/hangar/internal/auth"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/middleware"
	"flightops360/hangar/internal/store"
)

type testServer struct {
	handler http.Handler
	tokens  *auth.TokenManager
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) *testServer {
	t.Helper()
	logging.SetLogger(zap.NewNop())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	s, err := store.NewSQLStore(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.NewMetricsRegistry(reg)
	tokens, err := auth.NewTokenManager("router-test-secret", time.Hour)
	require.NoError(t, err)

	deps := api.InitDependencies(store.Instrument(s, m), api.Collaborators{Metrics: m}, tokens)
	return &testServer{
		handler: RegisterRoutes(deps, Options{RateLimiter: limiter, Gatherer: reg}),
		tokens:  tokens,
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string, roles ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if roles != nil {
		token, err := ts.tokens.Issue("uid-1", "ops@example.com", roles)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestAPIRequiresToken(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/fleet", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/fleet", "", "Viewer")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWritesAreRoleGated(t *testing.T) {
	ts := newTestServer(t, nil)
	aircraft := `{"tailNumber":"N350FX","model":"CL-350"}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		roles      []string
		wantStatus int
	}{
		{"viewer cannot add aircraft", http.MethodPost, "/api/v1/fleet", aircraft, []string{"Viewer"}, http.StatusForbidden},
		{"manager adds aircraft", http.MethodPost, "/api/v1/fleet", aircraft, []string{"Manager"}, http.StatusCreated},
		{"admin adds aircraft", http.MethodPost, "/api/v1/fleet", aircraft, []string{"Admin"}, http.StatusCreated},
		{"crew cannot quote", http.MethodPost, "/api/v1/quotes/price", `{}`, []string{"Crew"}, http.StatusForbidden},
		{"maintenance cannot edit trips", http.MethodPost, "/api/v1/trips", `{}`, []string{"Maintenance"}, http.StatusForbidden},
		{"dispatcher reaches trip validation", http.MethodPost, "/api/v1/trips", `{}`, []string{"Dispatcher"}, http.StatusBadRequest},
		{"manager cannot list users", http.MethodGet, "/api/v1/admin/users", "", []string{"Manager"}, http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/v1/admin/users", "", []string{"Admin"}, http.StatusOK},
		{"anyone marks all read", http.MethodPost, "/api/v1/notifications/read-all", "", []string{"Viewer"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, tt.body, tt.roles...)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestStaticRoutesWinOverIDs(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/api/v1/trips/current", "/api/v1/trips/upcoming", "/api/v1/fleet/rates", "/api/v1/crew/documents"} {
		rec := ts.do(t, http.MethodGet, path, "", "Viewer")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"data":[]`, path)
	}
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/healthCheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	ts.do(t, http.MethodGet, "/api/v1/fleet", "", "Viewer")
	rec = ts.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flightops_http_requests_total")
	assert.Contains(t, rec.Body.String(), "flightops_store_operations_total")
}

func TestRateLimitAppliesToAPI(t *testing.T) {
	ts := newTestServer(t, middleware.NewRateLimiter(1, 1))

	first := ts.do(t, http.MethodGet, "/api/v1/fleet", "", "Viewer")
	second := ts.do(t, http.MethodGet, "/api/v1/fleet", "", "Viewer")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// health checks stay outside the limiter
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/healthCheck", "").Code)
}
