package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"flightops360/hangar/internal/common"
	"flightops360/hangar/internal/logging"
	"flightops360/hangar/internal/mailer"
	"flightops360/hangar/internal/providers"
	"flightops360/hangar/internal/store"
)

// setupTestStore opens a SQL document store on a private in-memory SQLite
// database.
func setupTestStore(t *testing.T) store.Store {
	t.Helper()
	logging.SetLogger(zap.NewNop())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "Failed to open test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := store.NewSQLStore(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestCache() common.CacheInterface {
	return common.NewCacheService(60, 120)
}

// Mock TextGenerator
type mockGenerator struct {
	generateFunc func(ctx context.Context, req providers.GenerationRequest) (string, error)
	calls        []providers.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req providers.GenerationRequest) (string, error) {
	m.calls = append(m.calls, req)
	return m.generateFunc(ctx, req)
}

// Mock mail sender
type mockSender struct {
	sendFunc func(ctx context.Context, msg mailer.Message) error
	sent     []mailer.Message
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	if m.sendFunc == nil {
		return nil
	}
	return m.sendFunc(ctx, msg)
}

// Mock blob storage
type mockBlobs struct {
	uploaded map[string][]byte
	deleted  []string
}

func (m *mockBlobs) Upload(_ context.Context, key, _ string, body []byte) (string, error) {
	if m.uploaded == nil {
		m.uploaded = map[string][]byte{}
	}
	m.uploaded[key] = body
	return "https://files.example.com/" + key, nil
}

func (m *mockBlobs) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
