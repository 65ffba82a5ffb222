package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"closing_table/internal/domain"
	"closing_table/pkg/errcodes"
)

// RedisBackend shares entries between replicas. Redis expires keys on its own,
// so Sweep has nothing to do. Keys outlive evictAt by expiryGrace, which lets
// the stores report a lapsed entry as expired before it disappears.
type RedisBackend[T any] struct {
	client      redis.UniversalClient
	namespace   string
	expiryGrace time.Duration
}

func NewRedisBackend[T any](client redis.UniversalClient, namespace string) *RedisBackend[T] {
	return &RedisBackend[T]{
		client:    client,
		namespace: namespace,
	}
}

func (b *RedisBackend[T]) WithExpiryGrace(grace time.Duration) *RedisBackend[T] {
	b.expiryGrace = grace
	return b
}

func (b *RedisBackend[T]) Put(ctx context.Context, key string, value T, evictAt time.Time) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	k := b.key(key)

	_, err = b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, k, data, 0)
		pipe.PExpireAt(ctx, k, evictAt.Add(b.expiryGrace))

		return nil
	})
	if err != nil {
		return domain.WrapError(err, errcodes.StoreUnavailable, "redis put")
	}

	return nil
}

func (b *RedisBackend[T]) Get(ctx context.Context, key string) (T, error) {
	data, err := b.client.Get(ctx, b.key(key)).Bytes()
	if err != nil {
		var zero T
		return zero, b.wrap(err, "redis get")
	}

	return decode[T](data)
}

// Take relies on GETDEL, so concurrent callers race inside Redis and exactly
// one of them sees the value.
func (b *RedisBackend[T]) Take(ctx context.Context, key string) (T, error) {
	data, err := b.client.GetDel(ctx, b.key(key)).Bytes()
	if err != nil {
		var zero T
		return zero, b.wrap(err, "redis getdel")
	}

	return decode[T](data)
}

func (b *RedisBackend[T]) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (b *RedisBackend[T]) key(key string) string {
	return b.namespace + ":" + key
}

func (b *RedisBackend[T]) wrap(err error, message string) error {
	if errors.Is(err, redis.Nil) {
		return domain.ErrNotFound
	}

	return domain.WrapError(err, errcodes.StoreUnavailable, message)
}
