package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s, err := NewSQLStore(db, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLStore_SaveThenGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "fleet", "N123", map[string]any{
		"tailNumber": "N123",
		"model":      "PC-12",
		"id":         "ignored",
		"createdAt":  "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "N123", saved.ID)
	assert.Equal(t, "PC-12", saved.Data["model"])
	assert.NotContains(t, saved.Data, "id")
	assert.NotContains(t, saved.Data, "createdAt")
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(ctx, "fleet", "N123")
	require.NoError(t, err)
	assert.Equal(t, saved.Data, got.Data)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
}

func TestSQLStore_SaveMergesAndPreservesCreatedAt(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	restore := Now
	Now = func() time.Time { return clock }
	t.Cleanup(func() { Now = restore })

	first, err := s.Save(ctx, "customers", "c1", map[string]any{"name": "Acme", "phone": "555"})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	second, err := s.Save(ctx, "customers", "c1", map[string]any{"name": "Acme Air"})
	require.NoError(t, err)

	assert.Equal(t, "Acme Air", second.Data["name"])
	assert.Equal(t, "555", second.Data["phone"], "fields absent from the patch are kept")
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	// A clock that runs backwards never moves updatedAt backwards.
	clock = clock.Add(-2 * time.Hour)
	third, err := s.Save(ctx, "customers", "c1", map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.False(t, third.UpdatedAt.Before(second.UpdatedAt))
}

func TestSQLStore_ListFiltersByCollectionAndField(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, _ = s.Save(ctx, "melItems", "m1", map[string]any{"aircraftId": "A", "isDeferred": true})
	_, _ = s.Save(ctx, "melItems", "m2", map[string]any{"aircraftId": "B", "isDeferred": false})
	_, _ = s.Save(ctx, "melItems", "m3", map[string]any{"aircraftId": "A", "isDeferred": false})
	_, _ = s.Save(ctx, "fleet", "A", map[string]any{"aircraftId": "A"})

	all, err := s.List(ctx, "melItems")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	forA, err := s.List(ctx, "melItems", Eq("aircraftId", "A"))
	require.NoError(t, err)
	assert.Len(t, forA, 2)

	deferred, err := s.List(ctx, "melItems", Eq("aircraftId", "A"), Eq("isDeferred", true))
	require.NoError(t, err)
	require.Len(t, deferred, 1)
	assert.Equal(t, "m1", deferred[0].ID)
}

func TestSQLStore_DeleteCascades(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, _ = s.Save(ctx, "fleet", "X", map[string]any{"tailNumber": "N1"})
	_, _ = s.Save(ctx, "aircraftRates", "X", map[string]any{"buy": 1000.0, "sell": 1500.0})
	_, _ = s.Save(ctx, "aircraftRates", "Y", map[string]any{"buy": 1.0, "sell": 2.0})

	err := s.Delete(ctx, Ref{"fleet", "X"}, Ref{"aircraftRates", "X"}, Ref{"aircraftComponentTimes", "X"})
	require.NoError(t, err)

	_, err = s.Get(ctx, "aircraftRates", "X")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "aircraftRates", "Y")
	assert.NoError(t, err)
}

func TestSQLStore_DeleteMissingTarget(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, _ = s.Save(ctx, "aircraftRates", "Z", map[string]any{"buy": 1.0})

	err := s.Delete(ctx, Ref{"fleet", "Z"}, Ref{"aircraftRates", "Z"})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Get(ctx, "aircraftRates", "Z")
	assert.NoError(t, err, "cascade must not run when the target is missing")
}

func TestSQLStore_CountAndPing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Save(ctx, "crew", id, map[string]any{"firstName": id})
		require.NoError(t, err)
	}
	_, _ = s.Save(ctx, "crew", "a", map[string]any{"firstName": "again"})

	n, err := s.Count(ctx, "crew")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, s.Ping(ctx))
}

func TestSQLStore_ConcurrentSavesKeepOneDocument(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.Save(ctx, "trips", "T1", map[string]any{"n": float64(n)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	n, err := s.Count(ctx, "trips")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMatches(t *testing.T) {
	data := map[string]any{"count": 3.0, "name": "x", "tags": []any{"a"}}

	assert.True(t, Matches(data, nil))
	assert.True(t, Matches(data, []Filter{Eq("count", 3)}))
	assert.True(t, Matches(data, []Filter{Eq("name", "x"), Eq("tags", []any{"a"})}))
	assert.False(t, Matches(data, []Filter{Eq("missing", "x")}))
	assert.False(t, Matches(data, []Filter{Eq("name", "y")}))
}
