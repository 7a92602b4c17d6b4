package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pranav-19192/travelease/config"
	"github.com/pranav-19192/travelease/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	seatMapTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, seatMapTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		seatMapTTL: seatMapTTL,
	}
}

func (c *RedisCache) GetSeatMap(ctx context.Context) ([]domain.Seat, error) {
	data, err := c.client.Get(ctx, seatMapKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var seats []domain.Seat
	if err := json.Unmarshal(data, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (c *RedisCache) SetSeatMap(ctx context.Context, seats []domain.Seat) error {
	payload, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, seatMapKey(), payload, c.seatMapTTL).Err()
}

func seatMapKey() string {
	return "cache:seatmap"
}
