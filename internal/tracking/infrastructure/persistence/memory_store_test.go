package persistence

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWeekStore_LoadNeverSaved(t *testing.T) {
	store := NewMemoryWeekStore()

	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, weeks)
}

func TestMemoryWeekStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewMemoryWeekStore()
	ctx := context.Background()

	want := domain.SampleWeeks()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryWeekStore_CorruptPayloadFallsBack(t *testing.T) {
	store := NewMemoryWeekStore()
	store.SetRaw([]byte(`not json`))

	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, weeks)
}
