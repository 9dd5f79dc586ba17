package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
	"github.com/felixgeelhaar/fitweek/internal/tracking/infrastructure/persistence"
)

func TestImportWeeksReplacesCollection(t *testing.T) {
	store := seededStore(t, []domain.WeekEntry{domain.NewWeekEntry("2025-01-06")})
	handler := NewImportWeeksHandler(store)

	payload, err := domain.EncodeWeeks(domain.SampleWeeks())
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), ImportWeeksCommand{Data: payload})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "2025-11-24", saved[0].WeekOf)
}

func TestImportWeeksAcceptsLegacyBareArray(t *testing.T) {
	store := persistence.NewMemoryWeekStore()
	handler := NewImportWeeksHandler(store)

	payload := []byte(`[{
		"id": "w1", "weekOf": "2025-12-08",
		"days": {"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {}}
	}]`)

	result, err := handler.Handle(context.Background(), ImportWeeksCommand{Data: payload})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestImportWeeksRejectsMalformedPayload(t *testing.T) {
	existing := domain.NewWeekEntry("2025-01-06")
	store := seededStore(t, []domain.WeekEntry{existing})
	handler := NewImportWeeksHandler(store)

	_, err := handler.Handle(context.Background(), ImportWeeksCommand{Data: []byte(`{"weeks": "nope"}`)})
	require.ErrorIs(t, err, ErrInvalidImport)

	// Failed imports never touch the stored collection.
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, existing.ID, saved[0].ID)
}

func TestImportWeeksRejectsWholeFileOnOneBadRecord(t *testing.T) {
	store := persistence.NewMemoryWeekStore()
	handler := NewImportWeeksHandler(store)

	payload := []byte(`{"version": 1, "weeks": [
		{"id": "w1", "weekOf": "2025-12-08",
		 "days": {"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {}}},
		{"id": "w2", "weekOf": "2025-12-15", "days": {"mon": {}}}
	]}`)

	_, err := handler.Handle(context.Background(), ImportWeeksCommand{Data: payload})
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestImportWeeksAcceptsEmptyCollection(t *testing.T) {
	store := seededStore(t, domain.SampleWeeks())
	handler := NewImportWeeksHandler(store)

	result, err := handler.Handle(context.Background(), ImportWeeksCommand{Data: []byte(`{"version": 1, "weeks": []}`)})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Empty(t, saved)
}
