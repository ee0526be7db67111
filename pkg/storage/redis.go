// pkg/storage/redis.go
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisPrefix – префикс ключей кэша разрешений в Redis.
const DefaultRedisPrefix = "hot100:url:"

var opTimeout = 3 * time.Second

// RedisStore хранит разрешения в Redis без TTL.
type RedisStore struct {
	Client *redis.Client
	prefix string
}

// NewRedis подключается к Redis и проверяет соединение.
func NewRedis(ctx context.Context, addr, prefix string) (*RedisStore, error) {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, &CacheError{Op: "подключение к " + addr, Err: err}
	}
	return &RedisStore{Client: client, prefix: prefix}, nil
}

// Get получает значение по ключу.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	v, err := s.Client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &CacheError{Op: "чтение", Key: key, Err: err}
	}
	return v, true, nil
}

// Put сохраняет значение по ключу без срока жизни.
func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.Client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return &CacheError{Op: "запись", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}
