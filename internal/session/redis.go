package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session state in Redis so multiple instances can serve the
// same sessions. History is a list trimmed to the window on every append, the
// context a JSON value; both keys share a TTL refreshed on write.
type RedisStore struct {
	rdb      redis.Cmdable
	maxTurns int
	ttl      time.Duration
}

// NewRedisStore creates a Redis-backed store retaining at most maxTurns turns
// per session. A zero ttl means keys never expire.
func NewRedisStore(rdb redis.Cmdable, maxTurns int, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, maxTurns: maxTurns, ttl: ttl}
}

func (s *RedisStore) contextKey(sessionID string) string {
	return fmt.Sprintf("session:%s:context", sessionID)
}

func (s *RedisStore) turnsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:turns", sessionID)
}

func (s *RedisStore) LoadContext(ctx context.Context, sessionID string) (*Context, error) {
	raw, err := s.rdb.Get(ctx, s.contextKey(sessionID)).Result()
	if err == redis.Nil {
		return &Context{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session context: %w", err)
	}
	var sc Context
	if err := json.Unmarshal([]byte(raw), &sc); err != nil {
		return nil, fmt.Errorf("decoding session context: %w", err)
	}
	return &sc, nil
}

func (s *RedisStore) SaveContext(ctx context.Context, sessionID string, sc *Context) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encoding session context: %w", err)
	}
	if err := s.rdb.Set(ctx, s.contextKey(sessionID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving session context: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, sessionID string) ([]Turn, error) {
	rows, err := s.rdb.LRange(ctx, s.turnsKey(sessionID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}
	turns := make([]Turn, 0, len(rows))
	for i, row := range rows {
		var t Turn
		if err := json.Unmarshal([]byte(row), &t); err != nil {
			return nil, fmt.Errorf("decoding turn %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (s *RedisStore) AppendTurns(ctx context.Context, sessionID string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}
	key := s.turnsKey(sessionID)
	values := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding turn: %w", err)
		}
		values = append(values, b)
	}

	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending session turns: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.turnsKey(sessionID), s.contextKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
