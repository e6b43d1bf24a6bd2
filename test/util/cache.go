package util

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/cortexhq/cortex/pkg/cache"
)

// SetupTestCache starts an in-process Redis and returns a cache client over
// it, plus the miniredis handle for TTL manipulation (FastForward).
func SetupTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewFromRedis(rdb)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}
