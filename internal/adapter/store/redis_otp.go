package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// RedisOTPStore keeps one live code per phone number. Expiry is left to redis.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func (r *RedisOTPStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := r.client.Set(ctx, otpKeyPrefix+phone, code, ttl).Err(); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	return nil
}

func (r *RedisOTPStore) Get(ctx context.Context, phone string) (string, bool, error) {
	code, err := r.client.Get(ctx, otpKeyPrefix+phone).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load otp: %w", err)
	}
	return code, true, nil
}
