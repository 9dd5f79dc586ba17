package domain

import "sort"

// WeekTrendMetrics is a week's metrics joined with its WeekOf key and the
// week-over-week weight deltas. The delta fields are populated only when
// both this week and a preceding week have a defined average weight.
type WeekTrendMetrics struct {
	WeekOf string `json:"weekOf"`
	WeekMetrics
	WeightChangeVsPrevKg      *float64 `json:"weightChangeVsPrevKg,omitempty"`
	WeightChangeVsPrevPercent *float64 `json:"weightChangeVsPrevPercent,omitempty"`
}

// ComputeTrendMetrics orders the weeks chronologically and computes the
// weight delta of each week against the nearest preceding week that has a
// defined average weight. A week without a computable average does not
// reset that reference, so deltas skip over gapped weeks.
//
// The input is not mutated; the result is sorted ascending by WeekOf and
// has one element per input week.
func ComputeTrendMetrics(weeks []WeekEntry) []WeekTrendMetrics {
	sorted := make([]WeekEntry, len(weeks))
	copy(sorted, weeks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekOf < sorted[j].WeekOf
	})

	trends := make([]WeekTrendMetrics, 0, len(sorted))

	// Average weight of the most recent week that had one, not of the
	// previous array element.
	var prevAvgWeight *float64

	for _, week := range sorted {
		trend := WeekTrendMetrics{WeekOf: week.WeekOf}
		if metrics := ComputeWeekMetrics(week); metrics != nil {
			trend.WeekMetrics = *metrics
		}

		if trend.AvgWeightKg != nil && prevAvgWeight != nil {
			deltaKg := *trend.AvgWeightKg - *prevAvgWeight
			trend.WeightChangeVsPrevKg = Float64(deltaKg)
			if *prevAvgWeight != 0 {
				trend.WeightChangeVsPrevPercent = Float64(deltaKg / *prevAvgWeight * 100)
			}
		}

		if trend.AvgWeightKg != nil {
			prevAvgWeight = trend.AvgWeightKg
		}
		trends = append(trends, trend)
	}

	return trends
}
