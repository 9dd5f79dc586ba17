package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
	"github.com/felixgeelhaar/fitweek/internal/tracking/infrastructure/persistence"
)

func TestUpdateWeekSetsNumericFields(t *testing.T) {
	store := seededStore(t, []domain.WeekEntry{domain.NewWeekEntry("2025-12-08")})
	handler := NewUpdateWeekHandler(store)

	result, err := handler.Handle(context.Background(), UpdateWeekCommand{
		WeekOf:         "2025-12-08",
		AvgStepsPerDay: strPtr("10500"),
		TotalSets:      strPtr("42"),
		TotalVolumeKg:  strPtr("25000.5"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Week.AvgStepsPerDay)
	assert.Equal(t, 10500, *result.Week.AvgStepsPerDay)
	require.NotNil(t, result.Week.TotalSets)
	assert.Equal(t, 42, *result.Week.TotalSets)
	require.NotNil(t, result.Week.TotalVolumeKg)
	assert.Equal(t, 25000.5, *result.Week.TotalVolumeKg)
}

func TestUpdateWeekSetsTextFields(t *testing.T) {
	store := seededStore(t, []domain.WeekEntry{domain.NewWeekEntry("2025-12-08")})
	handler := NewUpdateWeekHandler(store)

	result, err := handler.Handle(context.Background(), UpdateWeekCommand{
		WeekOf:                      "2025-12-08",
		TrainingSessionsDescription: strPtr("3x Full Body"),
		Notes:                       strPtr("Deload week"),
	})
	require.NoError(t, err)
	assert.Equal(t, "3x Full Body", result.Week.TrainingSessionsDescription)
	assert.Equal(t, "Deload week", result.Week.Notes)
	assert.Empty(t, result.Week.OtherNotes)
}

func TestUpdateWeekNilFieldsLeaveValuesUnchanged(t *testing.T) {
	week := domain.NewWeekEntry("2025-12-08")
	week.AvgStepsPerDay = domain.Int(9000)
	week.Notes = "keep me"
	store := seededStore(t, []domain.WeekEntry{week})
	handler := NewUpdateWeekHandler(store)

	result, err := handler.Handle(context.Background(), UpdateWeekCommand{
		WeekOf:    "2025-12-08",
		TotalSets: strPtr("30"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Week.AvgStepsPerDay)
	assert.Equal(t, 9000, *result.Week.AvgStepsPerDay)
	assert.Equal(t, "keep me", result.Week.Notes)
}

func TestUpdateWeekEmptyStringClearsNumericField(t *testing.T) {
	week := domain.NewWeekEntry("2025-12-08")
	week.AvgStepsPerDay = domain.Int(9000)
	store := seededStore(t, []domain.WeekEntry{week})
	handler := NewUpdateWeekHandler(store)

	result, err := handler.Handle(context.Background(), UpdateWeekCommand{
		WeekOf:         "2025-12-08",
		AvgStepsPerDay: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Week.AvgStepsPerDay)
}

func TestUpdateWeekInvalidNumberLeavesStoreUntouched(t *testing.T) {
	store := seededStore(t, []domain.WeekEntry{domain.NewWeekEntry("2025-12-08")})
	handler := NewUpdateWeekHandler(store)

	_, err := handler.Handle(context.Background(), UpdateWeekCommand{
		WeekOf:    "2025-12-08",
		TotalSets: strPtr("-5"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidDraft)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Nil(t, saved[0].TotalSets)
}

func TestUpdateWeekUnknownWeek(t *testing.T) {
	store := persistence.NewMemoryWeekStore()
	require.NoError(t, store.Save(context.Background(), []domain.WeekEntry{}))
	handler := NewUpdateWeekHandler(store)

	_, err := handler.Handle(context.Background(), UpdateWeekCommand{WeekOf: "2025-12-08"})
	assert.ErrorIs(t, err, ErrWeekNotFound)
}
