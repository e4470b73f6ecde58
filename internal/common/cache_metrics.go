package common

import (
	"strings"
	"time"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/metrics"
)

// MeteredCache counts hits and misses of the wrapped cache per key pattern.
type MeteredCache struct {
	CacheInterface
	metrics *metrics.MetricsRegistry
}

// NewMeteredCache wraps c. A nil registry returns c unchanged.
func NewMeteredCache(c CacheInterface, m *metrics.MetricsRegistry) CacheInterface {
	if m == nil {
		return c
	}
	return &MeteredCache{CacheInterface: c, metrics: m}
}

var knownPrefixes = []constants.CachePrefix{
	constants.CachePrefixCompanyProfile,
	constants.CachePrefixAircraftRate,
}

// keyPattern maps a key onto the prefix it was built from so that per-id
// keys share one label value.
func keyPattern(key string) string {
	for _, p := range knownPrefixes {
		if strings.HasPrefix(key, string(p)) {
			return string(p)
		}
	}
	return "other"
}

func (m *MeteredCache) record(key string, hit bool) {
	if hit {
		m.metrics.CacheHitsTotal.WithLabelValues(keyPattern(key)).Inc()
		return
	}
	m.metrics.CacheMissesTotal.WithLabelValues(keyPattern(key)).Inc()
}

func (m *MeteredCache) Get(key string) (interface{}, bool) {
	v, ok := m.CacheInterface.Get(key)
	m.record(key, ok)
	return v, ok
}

func (m *MeteredCache) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	hit := true
	v, err := m.CacheInterface.GetOrSet(key, duration, func() (any, error) {
		hit = false
		return loader()
	})
	m.record(key, hit)
	return v, err
}
