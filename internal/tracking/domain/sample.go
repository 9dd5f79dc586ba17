package domain

// SampleWeeks returns the seeded dataset used when the store holds nothing
// readable, so a fresh install shows a populated dashboard.
func SampleWeeks() []WeekEntry {
	return []WeekEntry{
		{
			ID:             "2025-11-24",
			WeekOf:         "2025-11-24",
			AvgStepsPerDay: Int(10925),
			Days: map[DayID]DayEntry{
				DayMon: {WeightKg: Float64(78.7), Calories: Int(2800), ProteinG: Int(150)},
				DayTue: {WeightKg: Float64(78.0), Calories: Int(2700), ProteinG: Int(160)},
				DayWed: {Calories: Int(2980), ProteinG: Int(181)},
				DayThu: {WeightKg: Float64(77.8), Calories: Int(2600), ProteinG: Int(155)},
				DayFri: {WeightKg: Float64(78.7), Calories: Int(2900), ProteinG: Int(170)},
				DaySat: {WeightKg: Float64(78.5), Calories: Int(3000), ProteinG: Int(165)},
				DaySun: {WeightKg: Float64(79.0), Calories: Int(2990), ProteinG: Int(148)},
			},
			TrainingSessionsDescription: "3x Full Body, 1x Arm at home",
			TotalSets:                   Int(61),
			TotalVolumeKg:               Float64(29942.5),
		},
		{
			ID:             "2025-12-01",
			WeekOf:         "2025-12-01",
			AvgStepsPerDay: Int(8898),
			Days: map[DayID]DayEntry{
				DayMon: {WeightKg: Float64(79.5), Calories: Int(3077), ProteinG: Int(118)},
				DayTue: {WeightKg: Float64(78.4), Calories: Int(2724), ProteinG: Int(196)},
				DayWed: {WeightKg: Float64(79.2), Calories: Int(2574), ProteinG: Int(121)},
				DayThu: {WeightKg: Float64(78.2), Calories: Int(2323), ProteinG: Int(148)},
				DayFri: {WeightKg: Float64(78.4), Calories: Int(2692), ProteinG: Int(159)},
				DaySat: {WeightKg: Float64(78.4), Calories: Int(2518), ProteinG: Int(171)},
				DaySun: {WeightKg: Float64(79.0), Calories: Int(2965), ProteinG: Int(172)},
			},
			TrainingSessionsDescription: "2x Full Body",
			TotalSets:                   Int(38),
			TotalVolumeKg:               Float64(23533),
			Notes:                       "Second week of the meso, tried to get to 2RIR on all exercises. Got a flu shot on Friday and took the rest of the week off from training.",
		},
	}
}
