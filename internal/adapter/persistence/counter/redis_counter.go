// Package counter backs the document sequence registry with shared stores, so several
// service instances draw from the same counters.
package counter

import (
	"context"

	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"

	"github.com/redis/go-redis/v9"
)

const defaultRedisNamespace = "backoffice"

type incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisCounterStore claims values with INCR; the first claim of a kind returns 1.
type RedisCounterStore struct {
	rdb       incrementer
	namespace string
}

var _ sequence.CounterStore = (*RedisCounterStore)(nil)

func NewRedisCounterStore(rdb *redis.Client, namespace string) *RedisCounterStore {
	return newRedisCounterStore(rdb, namespace)
}

func newRedisCounterStore(rdb incrementer, namespace string) *RedisCounterStore {
	if namespace == "" {
		namespace = defaultRedisNamespace
	}
	return &RedisCounterStore{rdb: rdb, namespace: namespace}
}

func (s *RedisCounterStore) Claim(ctx context.Context, kind entities.DocumentKind) (int64, error) {
	return s.rdb.Incr(ctx, s.key(kind)).Result()
}

func (s *RedisCounterStore) key(kind entities.DocumentKind) string {
	return s.namespace + "-" + string(kind) + "_seq"
}
