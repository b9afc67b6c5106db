package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "learnhub:"

// RedisKV stores the collections as plain string values. Unlike a cache
// client it propagates every error: redis is primary storage here.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(addr, password string, db int) *RedisKV {
	return &RedisKV{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (r *RedisKV) Get(key string) ([]byte, bool, error) {
	value, err := r.client.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisKV) Set(key string, value []byte) error {
	return r.client.Set(context.Background(), redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	return r.client.Del(context.Background(), redisKeyPrefix+key).Err()
}
