package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

var _ RecordStore = (*RedisStore)(nil)

// upsertScript кладёт запись в хеш коллекции и, если ключ новый, дописывает его
// в список порядка. Оба изменения выполняются одним скриптом.
var upsertScript = redis.NewScript(`
if redis.call('HSET', KEYS[1], ARGV[1], ARGV[2]) == 1 then
	redis.call('RPUSH', KEYS[2], ARGV[1])
end
return 1
`)

// RedisStore хранит коллекцию как хеш id -> JSON и список id в порядке вставки
type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStore(redisClient *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "records"
	}
	return &RedisStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (r *RedisStore) hashKey(collection string) string {
	return fmt.Sprintf("%s:%s", r.prefix, collection)
}

func (r *RedisStore) orderKey(collection string) string {
	return fmt.Sprintf("%s:%s:order", r.prefix, collection)
}

// List возвращает записи в порядке вставки
func (r *RedisStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	ids, err := r.redisClient.LRange(ctx, r.orderKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", collection, err)
	}
	if len(ids) == 0 {
		return []json.RawMessage{}, nil
	}

	values, err := r.redisClient.HMGet(ctx, r.hashKey(collection), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records: %w", collection, err)
	}
	return decodeRedisValues(collection, values)
}

func decodeRedisValues(collection string, values []any) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue // id в списке без записи в хеше
		}
		s, ok := v.(string)
		if !ok || !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("collection %s holds malformed record: %w", collection, models.ErrStoreReadCorrupted)
		}
		out = append(out, json.RawMessage(s))
	}
	return out, nil
}

func (r *RedisStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	val, err := r.redisClient.HGet(ctx, r.hashKey(collection), id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	if !json.Valid(val) {
		return nil, fmt.Errorf("%s/%s is malformed: %w", collection, id, models.ErrStoreReadCorrupted)
	}
	return json.RawMessage(val), nil
}

func (r *RedisStore) Upsert(ctx context.Context, collection, id string, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%s/%s: invalid json payload: %w", collection, id, models.ErrStoreWriteFailed)
	}
	keys := []string{r.hashKey(collection), r.orderKey(collection)}
	if err := upsertScript.Run(ctx, r.redisClient, keys, id, string(payload)).Err(); err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %v: %w", collection, id, err, models.ErrStoreWriteFailed)
	}
	return nil
}

func (r *RedisStore) Exists(ctx context.Context, collection string) (bool, error) {
	n, err := r.redisClient.Exists(ctx, r.hashKey(collection)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", collection, err)
	}
	return n > 0, nil
}
