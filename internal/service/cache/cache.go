// Package cache небольшая обертка над redis для кеширования редко меняющихся выборок.
// Все методы безопасны при nil-получателе: без redis сервисы работают напрямую с БД.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
}

// New создает обертку над переданным клиентом. При nil клиенте возвращает nil,
// что отключает кеширование.
func New(rdb *redis.Client) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb}
}

// Get читает значение по ключу и анмаршалит его в dest. Возвращает false если ключа нет
// или кеш выключен.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if unmarshalErr := json.Unmarshal([]byte(val), dest); unmarshalErr != nil {
		return false, fmt.Errorf("cache get %s: %w", key, unmarshalErr)
	}
	return true, nil
}

// Set пишет значение по ключу с указанным TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	if setErr := c.rdb.Set(ctx, key, b, ttl).Err(); setErr != nil {
		return fmt.Errorf("cache set %s: %w", key, setErr)
	}
	return nil
}

// Delete удаляет ключ.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}
