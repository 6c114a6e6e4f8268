package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-crew/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const recordKey = "quizcrew:generation:record:01J9Z3C8Q4"

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(recordKey).SetVal(`{"kind":"mcq"}`)
		val, err := adapter.Get(ctx, recordKey)
		assert.NoError(t, err)
		assert.Equal(t, `{"kind":"mcq"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(recordKey).RedisNil()
		val, err := adapter.Get(ctx, recordKey)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		mock.ExpectGet(recordKey).SetErr(redisErr)
		val, err := adapter.Get(ctx, recordKey)
		assert.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), recordKey)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_SetIfAbsent(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Stored", func(t *testing.T) {
		mock.ExpectSetNX(recordKey, "v", time.Hour).SetVal(true)
		stored, err := adapter.SetIfAbsent(ctx, recordKey, "v", time.Hour)
		assert.NoError(t, err)
		assert.True(t, stored)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		mock.ExpectSetNX(recordKey, "v", time.Hour).SetVal(false)
		stored, err := adapter.SetIfAbsent(ctx, recordKey, "v", time.Hour)
		assert.NoError(t, err)
		assert.False(t, stored)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("oom")
		mock.ExpectSetNX(recordKey, "v", time.Hour).SetErr(redisErr)
		stored, err := adapter.SetIfAbsent(ctx, recordKey, "v", time.Hour)
		assert.ErrorIs(t, err, redisErr)
		assert.False(t, stored)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	redisErr := errors.New("no route to host")
	mock.ExpectPing().SetErr(redisErr)
	assert.ErrorIs(t, adapter.Ping(ctx), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
