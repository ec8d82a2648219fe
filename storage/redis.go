package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores each session key as a plain string under noemie:<session>:<key>.
// A non-zero ttl expires idle keys.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func redisKey(session, key string) string {
	return "noemie:" + session + ":" + key
}

func (r *Redis) Get(ctx context.Context, session, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, redisKey(session, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *Redis) Put(ctx context.Context, session, key string, value []byte) error {
	return r.client.Set(ctx, redisKey(session, key), value, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, session, key string) error {
	return r.client.Del(ctx, redisKey(session, key)).Err()
}
