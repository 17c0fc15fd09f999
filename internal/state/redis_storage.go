package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const userContextKeyPattern = "user:context:%s"

// RedisStorage persists conversation contexts in Redis.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedisStorage initializes a Redis-backed Storage implementation.
// A non-positive ttl stores entries without expiration.
func NewRedisStorage(client *redis.Client, ttl time.Duration, log *slog.Logger) Storage {
	if log == nil {
		log = slog.Default()
	}

	return &RedisStorage{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// GetContext returns the stored context or ErrContextNotFound when absent.
func (s *RedisStorage) GetContext(ctx context.Context, psid string) (*UserContext, error) {
	key := redisUserContextKey(psid)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrContextNotFound
		}

		s.log.Error("failed to get context from redis", "psid", psid, "error", err)
		return nil, err
	}

	var userCtx UserContext
	if err := json.Unmarshal([]byte(data), &userCtx); err != nil {
		s.log.Error("failed to decode user context", "psid", psid, "error", err)
		return nil, err
	}

	return &userCtx, nil
}

// SetContext saves the provided context, overwriting any previous entry.
func (s *RedisStorage) SetContext(ctx context.Context, psid string, userCtx *UserContext) error {
	userCtx.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(userCtx)
	if err != nil {
		s.log.Error("failed to encode user context", "psid", psid, "error", err)
		return err
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}

	key := redisUserContextKey(psid)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.log.Error("failed to save context in redis", "psid", psid, "error", err)
		return err
	}

	return nil
}

// ClearContext removes the stored context for the given user.
func (s *RedisStorage) ClearContext(ctx context.Context, psid string) error {
	key := redisUserContextKey(psid)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Error("failed to clear user context", "psid", psid, "error", err)
		return err
	}

	return nil
}

func redisUserContextKey(psid string) string {
	return fmt.Sprintf(userContextKeyPattern, psid)
}
