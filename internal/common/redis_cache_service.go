package common

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"flightops360/hangar/internal/logging"
)

// RedisCacheService implements CacheInterface using Redis. Values are stored
// as JSON; read them back with CachedAs.
type RedisCacheService struct {
	client *redis.Client
	prefix string
	ctx    context.Context
	loads  singleflight.Group
}

var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService wraps client. Every key is namespaced with prefix so
// several deployments can share one Redis database.
func NewRedisCacheService(client *redis.Client, prefix string) *RedisCacheService {
	return &RedisCacheService{
		client: client,
		prefix: prefix,
		ctx:    context.Background(),
	}
}

func (r *RedisCacheService) key(k string) string {
	return r.prefix + k
}

// Set stores a value in Redis with the given key and duration
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Warn("redis cache: marshal failed", "key", key, "error", err)
		return
	}

	if err := r.client.Set(r.ctx, r.key(key), data, duration).Err(); err != nil {
		logging.Warn("redis cache: set failed", "key", key, "error", err)
	}
}

// Get retrieves a value from Redis by key
func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	data, err := r.client.Get(r.ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Warn("redis cache: get failed", "key", key, "error", err)
		return nil, false
	}

	var result interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		logging.Warn("redis cache: unmarshal failed", "key", key, "error", err)
		return nil, false
	}

	return result, true
}

func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, r.key(key)).Err(); err != nil {
		logging.Warn("redis cache: delete failed", "key", key, "error", err)
	}
}

func (r *RedisCacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error),
) (interface{}, error) {
	if val, found := r.Get(key); found {
		return val, nil
	}

	// Only loads within this process are collapsed; other replicas may load
	// the same key concurrently.
	val, err, _ := r.loads.Do(key, func() (any, error) {
		val, err := loader()
		if err != nil {
			return nil, err
		}
		r.Set(key, val, duration)
		return val, nil
	})
	return val, err
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
