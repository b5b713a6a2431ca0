package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions server-side so logout revokes them immediately.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

func (s *RedisStore) Save(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, redisKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		logger.Error("Failed to save session", err, map[string]interface{}{
			"user_id": userID,
		})
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Load(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	val, err := s.client.Get(ctx, redisKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		logger.Error("Failed to load session", err)
		return 0, fmt.Errorf("failed to load session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil || userID == 0 {
		logger.Warn("Discarding malformed session value", map[string]interface{}{
			"value": val,
		})
		return 0, ErrNoSession
	}
	return uint(userID), nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, redisKey(token)).Err(); err != nil {
		logger.Error("Failed to destroy session", err)
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
