package domain

// WeekMetrics holds the derived per-week aggregate statistics. Every field
// is optional: a nil pointer means the underlying sequence had no logged
// values. Metrics are recomputed on every read and never persisted.
type WeekMetrics struct {
	AvgWeightKg     *float64 `json:"avgWeightKg,omitempty"`
	MinWeightKg     *float64 `json:"minWeightKg,omitempty"`
	MaxWeightKg     *float64 `json:"maxWeightKg,omitempty"`
	AvgCalories     *float64 `json:"avgCalories,omitempty"`
	AvgProteinG     *float64 `json:"avgProteinG,omitempty"`
	AvgProteinPerKg *float64 `json:"avgProteinPerKg,omitempty"`
}

// ComputeWeekMetrics derives the aggregate statistics for one week.
// It returns nil when the week has no logged data points of any kind.
//
// AvgProteinPerKg is the mean of the per-day protein/weight ratios over the
// days where both fields are logged. It is deliberately not
// AvgProteinG/AvgWeightKg; the two differ whenever different days are
// missing different fields.
func ComputeWeekMetrics(week WeekEntry) *WeekMetrics {
	var (
		weights  []float64
		calories []float64
		proteins []float64
		ratios   []float64
	)

	for _, id := range DayIDs {
		day := week.Days[id]
		if day.WeightKg != nil {
			weights = append(weights, *day.WeightKg)
		}
		if day.Calories != nil {
			calories = append(calories, float64(*day.Calories))
		}
		if day.ProteinG != nil {
			proteins = append(proteins, float64(*day.ProteinG))
		}
		if day.ProteinG != nil && day.WeightKg != nil {
			ratios = append(ratios, float64(*day.ProteinG) / *day.WeightKg)
		}
	}

	if len(weights) == 0 && len(calories) == 0 && len(proteins) == 0 {
		return nil
	}

	m := &WeekMetrics{
		AvgCalories:     mean(calories),
		AvgProteinG:     mean(proteins),
		AvgProteinPerKg: mean(ratios),
	}
	if len(weights) > 0 {
		m.AvgWeightKg = mean(weights)
		m.MinWeightKg = Float64(minOf(weights))
		m.MaxWeightKg = Float64(maxOf(weights))
	}
	return m
}

// mean returns the arithmetic mean of values, or nil for an empty sequence.
// Emptiness is checked before dividing so no NaN can escape this layer.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Float64(sum / float64(len(values)))
}

// minOf and maxOf require a non-empty slice; callers guard emptiness first.

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
