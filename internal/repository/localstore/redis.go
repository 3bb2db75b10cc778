package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brewshop/internal/domain"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis stores values under "<prefix>:<namespace>:<key>". A zero ttl keeps
// values until they are deleted.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) Repository {
	return &redisRepo{client: client, prefix: prefix, ttl: ttl}
}

func (r *redisRepo) Get(ctx context.Context, namespace, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *redisRepo) Set(ctx context.Context, namespace, key, value string) error {
	return r.client.Set(ctx, r.key(namespace, key), value, r.ttl).Err()
}

func (r *redisRepo) Delete(ctx context.Context, namespace, key string) error {
	return r.client.Del(ctx, r.key(namespace, key)).Err()
}

func (r *redisRepo) key(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, key)
}
