package zone

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
)

// Cache хранит результаты lookup с ограниченным временем жизни
type Cache interface {
	// Get возвращает found=false при отсутствии ключа
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Ping проверяет доступность хранилища для health check
	Ping(ctx context.Context) error
}

// RedisCache реализует Cache поверх Redis
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache создает кэш поверх готового клиента
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "failed to get cache key %s", key)
	}
	return value, true, nil
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set cache key %s", key)
	}
	return nil
}

// Ping implements Cache
func (c *RedisCache) Ping(ctx context.Context) error {
	return errors.Wrap(c.client.Ping(ctx).Err(), "redis ping failed")
}

type memoryEntry struct {
	expiresAt time.Time
	value     string
}

// MemoryCache используется, когда Redis не настроен
type MemoryCache struct {
	nextSweep time.Time
	items     map[string]memoryEntry
	now       func() time.Time
	mu        sync.Mutex
}

// memorySweepInterval ограничивает частоту полного обхода в Set
const memorySweepInterval = time.Minute

// NewMemoryCache создает in-process кэш
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Get implements Cache
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return "", false, nil
	}
	if c.now().After(entry.expiresAt) {
		delete(c.items, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set implements Cache
func (c *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !now.Before(c.nextSweep) {
		// Ключи, которые больше не запрашивают, иначе остались бы навсегда
		for k, entry := range c.items {
			if now.After(entry.expiresAt) {
				delete(c.items, k)
			}
		}
		c.nextSweep = now.Add(memorySweepInterval)
	}

	c.items[key] = memoryEntry{value: value, expiresAt: now.Add(ttl)}
	return nil
}

// Ping implements Cache. Память доступна всегда.
func (c *MemoryCache) Ping(context.Context) error { return nil }
