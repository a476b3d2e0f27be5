package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares filter state across server instances.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(k SessionKey) string {
	return s.prefix + ":" + k.String()
}

func (s *RedisStore) Load(ctx context.Context, key SessionKey) (SessionState, bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return SessionState{}, false, nil
	}
	if err != nil {
		return SessionState{}, false, fmt.Errorf("load filter state: %w", err)
	}
	var st SessionState
	if err := json.Unmarshal(raw, &st); err != nil {
		return SessionState{}, false, fmt.Errorf("decode filter state: %w", err)
	}
	return st, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key SessionKey, st SessionState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode filter state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save filter state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key SessionKey) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("delete filter state: %w", err)
	}
	return nil
}
