package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps each key as a JSON string in redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(address string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: address,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, &StorageError{Op: "open", Key: address, Err: err}
	}

	zap.S().Info("Redis connected successfully.")
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string, out any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrAbsent
	}
	if err != nil {
		return &StorageError{Op: "get", Key: key, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		zap.S().Warnw("stored value is not valid JSON, treating as absent", "key", key, "error", err)
		return ErrAbsent
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
