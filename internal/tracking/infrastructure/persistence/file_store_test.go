package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileWeekStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weeks.json")
	return NewFileWeekStore(path, nil)
}

func TestFileWeekStore_LoadMissingFile(t *testing.T) {
	store := newTestFileStore(t)

	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, weeks)
}

func TestFileWeekStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	want := domain.SampleWeeks()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileWeekStore_SaveEmptyCollection(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.WeekEntry{}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFileWeekStore_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weeks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"weeks":`), 0o600))

	store := NewFileWeekStore(path, nil)
	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, weeks)
}

func TestFileWeekStore_WrongVersionFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weeks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":2,"weeks":[]}`), 0o600))

	store := NewFileWeekStore(path, nil)
	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, weeks)
}

func TestFileWeekStore_LegacyBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weeks.json")
	raw, err := domain.EncodeWeeks(domain.SampleWeeks())
	require.NoError(t, err)

	// Strip the envelope down to the legacy bare array.
	legacy := raw[len(`{"version":1,"weeks":`) : len(raw)-1]
	require.NoError(t, os.WriteFile(path, legacy, 0o600))

	store := NewFileWeekStore(path, nil)
	weeks, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SampleWeeks(), weeks)
}

func TestFileWeekStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "weeks.json")
	store := NewFileWeekStore(path, nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.SampleWeeks()))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFileWeekStore_SaveOverwrites(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.SampleWeeks()))
	require.NoError(t, store.Save(ctx, domain.SampleWeeks()[:1]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
