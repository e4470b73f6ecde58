package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flightops360/hangar/internal/config"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/metrics"
	"flightops360/hangar/internal/store"
)

func TestOpenStore_SQLite(t *testing.T) {
	logging.SetLogger(zap.NewNop())
	cfg := &config.Config{StoreDriver: config.StoreSQLite, SQLitePath: filepath.Join(t.TempDir(), "hangar.db")}

	s, err := OpenStore(context.Background(), cfg, metrics.NewMetricsRegistry(prometheus.NewRegistry()))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*store.Instrumented)
	assert.True(t, ok, "store should be instrumented when metrics are given")
	assert.NoError(t, s.Ping(context.Background()))

	_, err = s.Save(context.Background(), "fleet", "a1", map[string]any{"tailNumber": "N1"})
	require.NoError(t, err)
	n, err := s.Count(context.Background(), "fleet")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "cassandra"}, nil)
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{PgUser: "ops", PgPassword: "pw", PgHost: "db", PgPort: "5432", PgDB: "flightops"}
	assert.Equal(t, "postgres://ops:pw@db:5432/flightops?sslmode=disable", PostgresDSN(cfg))
}
