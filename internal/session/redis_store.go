package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one hash per session so several web instances share state.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Get(ctx context.Context, sid string, key Key) (string, bool, error) {
	if sid == "" {
		return "", false, ErrInvalidSession
	}
	v, err := s.rdb.HGet(ctx, redisKey(sid), string(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, key Key, value string) error {
	if sid == "" {
		return ErrInvalidSession
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, redisKey(sid), string(key), value)
	pipe.Expire(ctx, redisKey(sid), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if sid == "" {
		return ErrInvalidSession
	}
	fields := make([]string, len(AllKeys))
	for i, k := range AllKeys {
		fields[i] = string(k)
	}
	return s.rdb.HDel(ctx, redisKey(sid), fields...).Err()
}
