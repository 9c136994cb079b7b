package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisAppointmentStoreMissingKey(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewRedisAppointmentStore(client, "appointments")

	blob, ok, err := store.LoadBlob(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, blob)
}

func TestRedisAppointmentStoreRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisAppointmentStore(client, "appointments")
	ctx := context.Background()

	require.NoError(t, store.SaveBlob(ctx, `[{"id":"a1"}]`))

	raw, err := mr.Get("appointments")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a1"}]`, raw)

	blob, ok, err := store.LoadBlob(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a1"}]`, blob)

	require.NoError(t, store.SaveBlob(ctx, `[]`))
	blob, _, err = store.LoadBlob(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, blob)
}

func TestRedisAppointmentStoreErrors(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisAppointmentStore(client, "appointments")
	mr.SetError("server down")

	_, _, err := store.LoadBlob(context.Background())
	assert.Error(t, err)
	assert.Error(t, store.SaveBlob(context.Background(), "[]"))
}
