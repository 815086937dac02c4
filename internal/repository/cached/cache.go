package cached

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/frontandrew/garage/internal/pkg/logger"
	"github.com/frontandrew/garage/internal/pkg/redis"
)

// Cache - хранилище ключ-значение с TTL (реализуется redis.Client)
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// store - общая логика read-through для кэшируемых репозиториев.
// Ошибки кэша не прерывают запрос: данные берутся из БД.
type store struct {
	cache  Cache
	ttl    time.Duration
	logger logger.Logger
}

// load возвращает значение из кэша или вызывает fetch и кэширует результат.
// Ошибки fetch (в том числе not found) не кэшируются.
func load[T any](ctx context.Context, s *store, key string, fetch func(context.Context) (*T, error)) (*T, error) {
	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return &value, nil
		}
		s.logger.Warn("Corrupted cache entry", map[string]interface{}{
			"key": key,
		})
	case !errors.Is(err, redis.ErrCacheMiss):
		s.logger.Warn("Cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(value)
	if err != nil {
		return value, nil
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	return value, nil
}
