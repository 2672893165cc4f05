package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionKeyPrefix = "session:"
	redisUserKeyPrefix    = "session_user:"
)

// RedisStore implements Store on Redis. Sessions are stored as JSON values
// with a TTL matching their expiry; a per-user key tracks the user's single
// active session so Create can evict the previous one.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.ID == uuid.Nil || session.UserID == uuid.Nil {
		return ErrInvalidSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrInvalidSession
	}

	userKey := redisUserKeyPrefix + session.UserID.String()

	// Evict the user's previous session before storing the new one.
	prev, err := s.client.Get(ctx, userKey).Result()
	if err == nil && prev != "" {
		if err := s.client.Del(ctx, redisSessionKeyPrefix+prev).Err(); err != nil {
			return fmt.Errorf("evict prior session: %w", err)
		}
	} else if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("lookup prior session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisSessionKeyPrefix+session.ID.String(), data, ttl)
	pipe.Set(ctx, userKey, session.ID.String(), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := s.client.Get(ctx, redisSessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisSessionKeyPrefix+id.String())
	pipe.Del(ctx, redisUserKeyPrefix+session.UserID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	userKey := redisUserKeyPrefix + userID.String()

	id, err := s.client.Get(ctx, userKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("lookup user session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisSessionKeyPrefix+id)
	pipe.Del(ctx, userKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis TTLs expire session keys on their own.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
