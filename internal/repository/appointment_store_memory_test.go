package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAppointmentStore(t *testing.T) {
	store := NewMemoryAppointmentStore()
	ctx := context.Background()

	_, ok, err := store.LoadBlob(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveBlob(ctx, "[]"))
	require.NoError(t, store.SaveBlob(ctx, `[{"id":"x"}]`))

	blob, ok, err := store.LoadBlob(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, blob)
	assert.Equal(t, 2, store.Saves())
}
