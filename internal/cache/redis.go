package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tmarqs/eventstay/internal/models"
)

type RedisCache struct {
	client    *redis.Client
	hotelsTTL time.Duration
}

func NewRedisCache(client *redis.Client, hotelsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, hotelsTTL: hotelsTTL}
}

func (c *RedisCache) GetHotels(ctx context.Context) ([]models.Hotel, error) {
	data, err := c.client.Get(ctx, hotelsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var hotels []models.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *RedisCache) SetHotels(ctx context.Context, hotels []models.Hotel) error {
	payload, err := json.Marshal(hotels)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, hotelsKey(), payload, c.hotelsTTL).Err()
}

func hotelsKey() string {
	return "cache:hotels"
}
