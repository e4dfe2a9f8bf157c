package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flow-hydraulics/launcher-settings/errors"
	"github.com/gomodule/redigo/redis"
)

const DefaultRedisKey = "launcher:settings"

// RedisStore keeps the settings record as one JSON document under a single
// key. SET replaces the document atomically.
type RedisStore struct {
	pool *redis.Pool
	key  string
}

func NewRedisStore(pool *redis.Pool, key string) Store {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{pool: pool, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (*Settings, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	b, err := redis.Bytes(conn.Do("GET", s.key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	settings := &Settings{}
	if err := json.Unmarshal(b, settings); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrDeserialization, err)
	}

	return settings, nil
}

func (s *RedisStore) Save(ctx context.Context, settings *Settings) error {
	return s.set(ctx, settings)
}

func (s *RedisStore) Seed(ctx context.Context, settings *Settings) error {
	return s.set(ctx, settings, "NX")
}

func (s *RedisStore) set(ctx context.Context, settings *Settings, flags ...interface{}) error {
	if settings == nil {
		return fmt.Errorf("nil settings")
	}

	b, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	args := append([]interface{}{s.key, b}, flags...)
	_, err = conn.Do("SET", args...)

	return err
}
