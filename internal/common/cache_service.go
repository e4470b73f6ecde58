package common

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CacheService is the in-process cache used when no Redis is configured.
// Concurrent GetOrSet calls for one missing key share a single load.
type CacheService struct {
	cache *cache.Cache
	loads singleflight.Group
}

var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpirationSeconds, cleanUpIntervalSeconds int) *CacheService {
	return &CacheService{
		cache: cache.New(
			time.Duration(defaultExpirationSeconds)*time.Second,
			time.Duration(cleanUpIntervalSeconds)*time.Second,
		),
	}
}

// Set stores value for duration; 0 means the default expiration.
func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// GetOrSet returns the cached value or stores what loader returns. Loader
// errors are returned and nothing is cached.
func (cs *CacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}
	val, err, _ := cs.loads.Do(key, func() (any, error) {
		if val, found := cs.Get(key); found {
			return val, nil
		}
		val, err := loader()
		if err != nil {
			return nil, err
		}
		cs.Set(key, val, duration)
		return val, nil
	})
	return val, err
}

// ItemCount includes expired items not yet cleaned up.
func (cs *CacheService) ItemCount() int {
	return cs.cache.ItemCount()
}

// Close is a no-op for the in-memory cache
func (cs *CacheService) Close() error {
	return nil
}
