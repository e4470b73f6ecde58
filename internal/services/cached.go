package services

import (
	"errors"
	"time"

	"flightops360/hangar/internal/common"
)

// errNothingToCache keeps an absent document out of the cache.
var errNothingToCache = errors.New("nothing to cache")

// readThrough loads key through cache.GetOrSet, so concurrent misses of one
// key share a single load. A nil result is returned as nil and not cached.
func readThrough[T any](cache common.CacheInterface, key string, ttl time.Duration, load func() (*T, error)) (*T, error) {
	if cache == nil {
		return load()
	}
	v, err := cache.GetOrSet(key, ttl, func() (any, error) {
		found, err := load()
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, errNothingToCache
		}
		return *found, nil
	})
	switch {
	case errors.Is(err, errNothingToCache):
		return nil, nil
	case err != nil:
		return nil, err
	}
	if out, ok := common.CachedAs[T](v); ok {
		return &out, nil
	}
	return load()
}
