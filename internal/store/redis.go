package store

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the key/value store with Redis, for deployments where the
// dashboard runs more than one replica behind a load balancer.
type RedisStore struct {
	rdb    *redis.Client
	ctx    context.Context
	prefix string
}

func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx, prefix: "dashboard:"}
}

func (s *RedisStore) Get(key string) string {
	val, err := s.rdb.Get(s.ctx, s.prefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read %q from Redis: %v", key, err)
		}
		return ""
	}
	return val
}

func (s *RedisStore) Set(key, value string) {
	if err := s.rdb.Set(s.ctx, s.prefix+key, value, 0).Err(); err != nil {
		log.Printf("Failed to write %q to Redis: %v", key, err)
	}
}

func (s *RedisStore) Clear(key string) {
	if err := s.rdb.Del(s.ctx, s.prefix+key).Err(); err != nil {
		log.Printf("Failed to clear %q from Redis: %v", key, err)
	}
}
