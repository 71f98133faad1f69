package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one key per session: session:<id>:access_token.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func redisKey(id string) string {
	return fmt.Sprintf("session:%s:%s", id, Slot)
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, bool, error) {
	token, err := s.rdb.Get(ctx, redisKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (s *RedisStore) Set(ctx context.Context, id, token string) error {
	return s.rdb.Set(ctx, redisKey(id), token, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKey(id)).Err()
}
