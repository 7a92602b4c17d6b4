package storage

import (
	"context"

	"github.com/pranav-19192/travelease/config"
	"github.com/redis/go-redis/v9"
)

type RedisMedium struct {
	client *redis.Client
}

func NewRedisMedium(cfg config.RedisConfig) *RedisMedium {
	return &RedisMedium{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (m *RedisMedium) Get(ctx context.Context, key string) (string, error) {
	value, err := m.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (m *RedisMedium) Set(ctx context.Context, key, value string) error {
	return m.client.Set(ctx, key, value, 0).Err()
}

func (m *RedisMedium) Delete(ctx context.Context, key string) error {
	return m.client.Del(ctx, key).Err()
}

var _ Medium = (*RedisMedium)(nil)
