package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	lockKeyPrefix     = "dispatch_lock"
	defaultRetryDelay = 25 * time.Millisecond
)

// releaseScript удаляет ключ, только если он всё ещё принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisLocker - блокировка по ключу между процессами: SET NX PX с токеном владельца.
// TTL ограничивает время удержания, если процесс упал, не освободив ключ.
type RedisLocker struct {
	redisClient *redis.Client
	ttl         time.Duration
	retryDelay  time.Duration
	logger      *logrus.Logger
}

func NewRedisLocker(redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisLocker {
	return &RedisLocker{
		redisClient: redisClient,
		ttl:         ttl,
		retryDelay:  defaultRetryDelay,
		logger:      logger,
	}
}

func redisLockKey(key string) string {
	return fmt.Sprintf("%s:%s", lockKeyPrefix, key)
}

// Acquire опрашивает Redis, пока ключ не освободится или не отменится ctx
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := redisLockKey(key)
	token := uuid.NewString()

	for {
		ok, err := l.redisClient.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("key %s: %v: %w", key, err, ErrNotAcquired)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("key %s: %v: %w", key, ctx.Err(), ErrNotAcquired)
		case <-time.After(l.retryDelay):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Освобождаем даже если вызывающий контекст уже отменён
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.redisClient, []string{redisKey}, token).Err(); err != nil {
				l.logger.WithError(err).WithField("lock_key", redisKey).Warn("Failed to release lock")
			}
		})
	}, nil
}
