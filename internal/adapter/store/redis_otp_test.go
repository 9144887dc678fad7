package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*RedisOTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisOTPStore(rdb), mr
}

func TestRedisOTPStore_PutGet(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "9876543210", "4821", 5*time.Minute))

	code, ok, err := s.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4821", code)
	assert.Equal(t, 5*time.Minute, mr.TTL("otp:9876543210"))
}

func TestRedisOTPStore_Overwrite(t *testing.T) {
	s, _ := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "9876543210", "1111", time.Minute))
	require.NoError(t, s.Put(ctx, "9876543210", "2222", time.Minute))

	code, ok, err := s.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2222", code)
}

func TestRedisOTPStore_Expiry(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "9876543210", "4821", time.Minute))
	mr.FastForward(61 * time.Second)

	_, ok, err := s.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisOTPStore_Missing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisOTPStore(db)

	mock.ExpectGet("otp:9000000000").RedisNil()

	_, ok, err := s.Get(context.Background(), "9000000000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisOTPStore_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisOTPStore(db)
	ctx := context.Background()

	mock.ExpectSet("otp:9000000000", "1234", time.Minute).SetErr(errors.New("connection refused"))
	mock.ExpectGet("otp:9000000000").SetErr(errors.New("connection refused"))

	assert.Error(t, s.Put(ctx, "9000000000", "1234", time.Minute))

	_, ok, err := s.Get(ctx, "9000000000")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
