package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestStores_RoundTrip(t *testing.T) {
	redisStore, _ := newRedisStore(t, time.Hour)

	stores := map[string]Store{
		"redis":  redisStore,
		"cookie": NewCookieStore("secret", time.Hour),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			token, err := store.Save(ctx, 42)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			userID, err := store.Load(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, uint(42), userID)

			_, err = store.Load(ctx, "")
			assert.ErrorIs(t, err, ErrNoSession)

			_, err = store.Load(ctx, "garbage")
			assert.ErrorIs(t, err, ErrNoSession)

			assert.NoError(t, store.Destroy(ctx, "unknown"))
		})
	}
}

func TestRedisStore_Destroy(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Save(ctx, 7)
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:"+token))

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Load(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Save(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Load(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStore_MalformedValue(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	require.NoError(t, mr.Set("session:bad", "not-a-number"))

	_, err := store.Load(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_Expiry(t *testing.T) {
	store := NewCookieStore("secret", time.Minute)
	ctx := context.Background()

	token, err := store.Save(ctx, 9)
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = store.Load(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCookieStore_RejectsOtherSecret(t *testing.T) {
	ctx := context.Background()
	token, err := NewCookieStore("secret-a", time.Hour).Save(ctx, 1)
	require.NoError(t, err)

	_, err = NewCookieStore("secret-b", time.Hour).Load(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}
