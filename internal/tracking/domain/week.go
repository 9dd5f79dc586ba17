package domain

import (
	"github.com/google/uuid"
)

// DayID identifies one of the seven weekdays within a tracked week.
type DayID string

const (
	DayMon DayID = "mon"
	DayTue DayID = "tue"
	DayWed DayID = "wed"
	DayThu DayID = "thu"
	DayFri DayID = "fri"
	DaySat DayID = "sat"
	DaySun DayID = "sun"
)

// DayIDs lists the weekday identifiers in their fixed iteration order.
// All per-day scans use this order so derived values are deterministic.
var DayIDs = []DayID{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// DayEntry is a sparse log for a single day. Every field is optional;
// a nil pointer means "not logged", which is distinct from a logged zero.
type DayEntry struct {
	WeightKg *float64 `json:"weightKg,omitempty"`
	Calories *int     `json:"calories,omitempty"`
	ProteinG *int     `json:"proteinG,omitempty"`
}

// IsEmpty reports whether no field of the day has been logged.
func (d DayEntry) IsEmpty() bool {
	return d.WeightKg == nil && d.Calories == nil && d.ProteinG == nil
}

// WeekEntry is one tracked week. WeekOf is the ISO date (YYYY-MM-DD) of the
// Monday beginning the week and is the sole chronological sort key; the
// zero-padded format makes lexicographic comparison safe. Days always
// contains exactly the seven DayIDs.
type WeekEntry struct {
	ID                          string              `json:"id"`
	WeekOf                      string              `json:"weekOf"`
	AvgStepsPerDay              *int                `json:"avgStepsPerDay,omitempty"`
	Days                        map[DayID]DayEntry  `json:"days"`
	TrainingSessionsDescription string              `json:"trainingSessionsDescription,omitempty"`
	TotalSets                   *int                `json:"totalSets,omitempty"`
	TotalVolumeKg               *float64            `json:"totalVolumeKg,omitempty"`
	Notes                       string              `json:"notes,omitempty"`
	OtherNotes                  string              `json:"otherNotes,omitempty"`
}

// NewWeekEntry creates an empty week for the given Monday with a fresh id.
func NewWeekEntry(weekOf string) WeekEntry {
	return WeekEntry{
		ID:     uuid.NewString(),
		WeekOf: weekOf,
		Days:   EmptyDays(),
	}
}

// EmptyDays returns a day map covering all seven weekdays with no data.
func EmptyDays() map[DayID]DayEntry {
	days := make(map[DayID]DayEntry, len(DayIDs))
	for _, id := range DayIDs {
		days[id] = DayEntry{}
	}
	return days
}

// Clone returns a deep copy of the week. Engines and handlers never mutate
// their inputs; edits go through Clone followed by a replace-by-id save.
func (w WeekEntry) Clone() WeekEntry {
	c := w
	c.Days = make(map[DayID]DayEntry, len(w.Days))
	for id, day := range w.Days {
		d := day
		d.WeightKg = cloneFloat(day.WeightKg)
		d.Calories = cloneInt(day.Calories)
		d.ProteinG = cloneInt(day.ProteinG)
		c.Days[id] = d
	}
	c.AvgStepsPerDay = cloneInt(w.AvgStepsPerDay)
	c.TotalSets = cloneInt(w.TotalSets)
	c.TotalVolumeKg = cloneFloat(w.TotalVolumeKg)
	return c
}

// CloneWeeks deep-copies a week collection.
func CloneWeeks(weeks []WeekEntry) []WeekEntry {
	out := make([]WeekEntry, len(weeks))
	for i, w := range weeks {
		out[i] = w.Clone()
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Float64 returns a pointer to v. Convenience for building sparse entries.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v. Convenience for building sparse entries.
func Int(v int) *int { return &v }
