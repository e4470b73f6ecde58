package common

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/metrics"
)

func TestGetOrSetLoadsOnceUnderContention(t *testing.T) {
	c := NewCacheService(60, 120)
	var loads int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrSet("k", time.Minute, func() (any, error) {
				atomic.AddInt32(&loads, 1)
				<-release
				return "loaded", nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
	for _, v := range results {
		assert.Equal(t, "loaded", v)
	}
	assert.Equal(t, 1, c.ItemCount())
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	c := NewCacheService(60, 120)
	boom := errors.New("store down")

	_, err := c.GetOrSet("k", time.Minute, func() (any, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
	_, found := c.Get("k")
	assert.False(t, found)

	v, err := c.GetOrSet("k", time.Minute, func() (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCachedAs(t *testing.T) {
	type rate struct {
		Buy  float64 `json:"buy"`
		Sell float64 `json:"sell"`
	}

	got, ok := CachedAs[rate](rate{Buy: 1, Sell: 2})
	require.True(t, ok)
	assert.Equal(t, 2.0, got.Sell)

	got, ok = CachedAs[rate](&rate{Buy: 3})
	require.True(t, ok)
	assert.Equal(t, 3.0, got.Buy)

	// Redis hands back decoded JSON
	got, ok = CachedAs[rate](map[string]any{"buy": 5.0, "sell": 6.0})
	require.True(t, ok)
	assert.Equal(t, rate{Buy: 5, Sell: 6}, got)

	_, ok = CachedAs[rate](nil)
	assert.False(t, ok)
	_, ok = CachedAs[rate]("not a rate")
	assert.False(t, ok)
}

func TestMeteredCacheCountsPerPrefix(t *testing.T) {
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	c := NewMeteredCache(NewCacheService(60, 120), m)
	key := string(constants.CachePrefixAircraftRate) + "ac-1"

	_, _ = c.GetOrSet(key, time.Minute, func() (any, error) { return 1, nil })
	_, _ = c.GetOrSet(key, time.Minute, func() (any, error) { return 1, nil })
	c.Get("unrelated")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixAircraftRate))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixAircraftRate))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("other")))

	assert.Same(t, c, NewMeteredCache(c, nil))
}
