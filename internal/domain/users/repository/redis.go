package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// RedisStore хранит учетные данные в Redis. Ключ живет до истечения access-токена,
// а если срок неизвестен - defaultTTL.
type RedisStore struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

// NewRedisStore создает новый экземпляр RedisStore
func NewRedisStore(rdb *redis.Client, defaultTTL time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, defaultTTL: defaultTTL}
}

func credentialsKey(telegramID int64) string {
	return fmt.Sprintf("credentials:%d", telegramID)
}

// Get возвращает учетные данные пользователя или nil
func (r *RedisStore) Get(ctx context.Context, telegramID int64) (*model.Credentials, error) {
	raw, err := r.rdb.Get(ctx, credentialsKey(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	var creds model.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	return &creds, nil
}

// Set сохраняет учетные данные с TTL
func (r *RedisStore) Set(ctx context.Context, telegramID int64, creds model.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	ttl := r.defaultTTL
	if !creds.ExpiresAt.IsZero() {
		ttl = time.Until(creds.ExpiresAt)
		if ttl <= 0 {
			return r.Delete(ctx, telegramID)
		}
	}

	if err := r.rdb.Set(ctx, credentialsKey(telegramID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Delete удаляет учетные данные пользователя
func (r *RedisStore) Delete(ctx context.Context, telegramID int64) error {
	if err := r.rdb.Del(ctx, credentialsKey(telegramID)).Err(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
