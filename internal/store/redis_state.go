package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"decoder/internal/domain"
)

const (
	userDictKey    = "userDict"
	deletedKeysKey = "deletedKeys"
)

// RedisStateStore persists the dictionary state as two JSON-encoded keys.
type RedisStateStore struct {
	client *redis.Client
	prefix string
	mu     sync.Mutex
}

// NewRedisStateStore returns a store using client, namespacing keys with prefix.
func NewRedisStateStore(client *redis.Client, prefix string) *RedisStateStore {
	return &RedisStateStore{client: client, prefix: prefix}
}

// LoadState reads both records; absent keys default to empty.
func (s *RedisStateStore) LoadState(ctx context.Context) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vals, err := s.client.MGet(ctx, s.key(userDictKey), s.key(deletedKeysKey)).Result()
	if err != nil {
		return domain.State{}, fmt.Errorf("redis mget: %w", err)
	}

	var st domain.State
	if err := decodeRedisValue(vals[0], &st.UserDict); err != nil {
		return domain.State{}, fmt.Errorf("decode %s: %w", s.key(userDictKey), err)
	}
	if err := decodeRedisValue(vals[1], &st.DeletedKeys); err != nil {
		return domain.State{}, fmt.Errorf("decode %s: %w", s.key(deletedKeysKey), err)
	}
	return normalizeState(st), nil
}

// SaveState writes both records in one transaction.
func (s *RedisStateStore) SaveState(ctx context.Context, st domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st = normalizeState(st)
	user, err := json.Marshal(st.UserDict)
	if err != nil {
		return err
	}
	deleted, err := json.Marshal(st.DeletedKeys)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(userDictKey), user, 0)
		pipe.Set(ctx, s.key(deletedKeysKey), deleted, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) key(name string) string { return s.prefix + name }

func decodeRedisValue(v any, out any) error {
	if v == nil {
		return nil
	}
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("unexpected value type %T", v)
	}
	return json.Unmarshal([]byte(str), out)
}

// Compile-time assertion that RedisStateStore implements domain.StateStore.
var _ domain.StateStore = (*RedisStateStore)(nil)
