package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const reportLockPrefix = "report_lock:"

// só remove a chave se ela ainda pertence a quem a adquiriu
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return client, nil
}

// NoopReportLocker sempre concede o lock; usado quando não há Redis configurado
type NoopReportLocker struct{}

func (NoopReportLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NoopReportLocker) Release(ctx context.Context, key string) error {
	return nil
}

type RedisReportLocker struct {
	client *redis.Client

	mu     sync.Mutex
	tokens map[string]string
}

func NewRedisReportLocker(client *redis.Client) *RedisReportLocker {
	return &RedisReportLocker{
		client: client,
		tokens: make(map[string]string),
	}
}

func (l *RedisReportLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, reportLockPrefix+key, token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("erro ao adquirir lock do relatório %s: %w", key, err)
	}
	if !acquired {
		return false, nil
	}

	l.mu.Lock()
	l.tokens[key] = token
	l.mu.Unlock()

	return true, nil
}

func (l *RedisReportLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	token, ok := l.tokens[key]
	delete(l.tokens, key)
	l.mu.Unlock()

	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{reportLockPrefix + key}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("erro ao liberar lock do relatório %s: %w", key, err)
	}

	return nil
}
