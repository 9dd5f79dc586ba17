package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekWithWeight builds a week whose every day logs the given weight, so
// its average weight is exactly that value.
func weekWithWeight(weekOf string, weightKg float64) WeekEntry {
	week := WeekEntry{ID: weekOf, WeekOf: weekOf, Days: EmptyDays()}
	for _, id := range DayIDs {
		week.Days[id] = DayEntry{WeightKg: Float64(weightKg)}
	}
	return week
}

func TestComputeTrendMetrics_EmptyInput(t *testing.T) {
	trends := ComputeTrendMetrics(nil)
	assert.Empty(t, trends)
	assert.NotNil(t, trends)
}

func TestComputeTrendMetrics_SortsByWeekOf(t *testing.T) {
	weeks := []WeekEntry{
		weekWithWeight("2025-12-01", 79),
		weekWithWeight("2025-11-17", 80),
		weekWithWeight("2025-11-24", 78),
	}

	trends := ComputeTrendMetrics(weeks)
	require.Len(t, trends, 3)
	assert.Equal(t, "2025-11-17", trends[0].WeekOf)
	assert.Equal(t, "2025-11-24", trends[1].WeekOf)
	assert.Equal(t, "2025-12-01", trends[2].WeekOf)

	// Input order must be preserved.
	assert.Equal(t, "2025-12-01", weeks[0].WeekOf)
}

func TestComputeTrendMetrics_Deltas(t *testing.T) {
	weeks := []WeekEntry{
		weekWithWeight("2025-11-17", 80),
		weekWithWeight("2025-11-24", 78),
		weekWithWeight("2025-12-01", 79),
	}

	trends := ComputeTrendMetrics(weeks)
	require.Len(t, trends, 3)

	assert.Nil(t, trends[0].WeightChangeVsPrevKg)
	assert.Nil(t, trends[0].WeightChangeVsPrevPercent)

	require.NotNil(t, trends[1].WeightChangeVsPrevKg)
	assert.InDelta(t, -2, *trends[1].WeightChangeVsPrevKg, 1e-9)
	require.NotNil(t, trends[1].WeightChangeVsPrevPercent)
	assert.InDelta(t, -2.5, *trends[1].WeightChangeVsPrevPercent, 1e-9)

	require.NotNil(t, trends[2].WeightChangeVsPrevKg)
	assert.InDelta(t, 1, *trends[2].WeightChangeVsPrevKg, 1e-9)
	require.NotNil(t, trends[2].WeightChangeVsPrevPercent)
	assert.InDelta(t, 100.0/78, *trends[2].WeightChangeVsPrevPercent, 1e-9)
}

func TestComputeTrendMetrics_GapSkipping(t *testing.T) {
	// The middle week has no data at all: its own deltas are absent and the
	// third week is compared against the first, not the gap.
	gap := WeekEntry{ID: "2025-11-24", WeekOf: "2025-11-24", Days: EmptyDays()}
	weeks := []WeekEntry{
		weekWithWeight("2025-11-17", 80),
		gap,
		weekWithWeight("2025-12-01", 79),
	}

	trends := ComputeTrendMetrics(weeks)
	require.Len(t, trends, 3)

	assert.Nil(t, trends[1].AvgWeightKg)
	assert.Nil(t, trends[1].WeightChangeVsPrevKg)
	assert.Nil(t, trends[1].WeightChangeVsPrevPercent)

	require.NotNil(t, trends[2].WeightChangeVsPrevKg)
	assert.InDelta(t, -1, *trends[2].WeightChangeVsPrevKg, 1e-9)
	require.NotNil(t, trends[2].WeightChangeVsPrevPercent)
	assert.InDelta(t, -1.25, *trends[2].WeightChangeVsPrevPercent, 1e-9)
}

func TestComputeTrendMetrics_ZeroPreviousWeight(t *testing.T) {
	weeks := []WeekEntry{
		weekWithWeight("2025-11-17", 0),
		weekWithWeight("2025-11-24", 78),
	}

	trends := ComputeTrendMetrics(weeks)
	require.Len(t, trends, 2)

	require.NotNil(t, trends[1].WeightChangeVsPrevKg)
	assert.InDelta(t, 78, *trends[1].WeightChangeVsPrevKg, 1e-9)
	assert.Nil(t, trends[1].WeightChangeVsPrevPercent)
}

func TestComputeTrendMetrics_MergesWeekMetrics(t *testing.T) {
	week := makeLoggedWeek()
	trends := ComputeTrendMetrics([]WeekEntry{week})
	require.Len(t, trends, 1)

	metrics := ComputeWeekMetrics(week)
	require.NotNil(t, metrics)
	assert.Equal(t, *metrics, trends[0].WeekMetrics)
	assert.Equal(t, week.WeekOf, trends[0].WeekOf)
}

func TestComputeTrendMetrics_OneOutputPerInput(t *testing.T) {
	weeks := []WeekEntry{
		weekWithWeight("2025-11-17", 80),
		{ID: "a", WeekOf: "2025-11-24", Days: EmptyDays()},
		{ID: "b", WeekOf: "2025-12-01", Days: EmptyDays()},
	}

	trends := ComputeTrendMetrics(weeks)
	assert.Len(t, trends, len(weeks))
}
