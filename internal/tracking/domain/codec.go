package domain

import (
	"encoding/json"
	"time"
)

// EnvelopeVersion is the persisted wire format version.
const EnvelopeVersion = 1

type envelope struct {
	Version    int         `json:"version"`
	ExportedAt string      `json:"exportedAt,omitempty"`
	Weeks      []WeekEntry `json:"weeks"`
}

// DecodeWeeks is the sole gate between untrusted persisted bytes and the
// typed model. It accepts either a bare JSON array of weeks (legacy) or a
// {version: 1, weeks: [...]} envelope, and validates every element
// structurally before accepting any: if a single record is malformed the
// whole decode yields nil. Decode failure is a return value, never an
// error; callers fall back to a default dataset.
//
// A successful decode of an empty collection returns a non-nil empty slice,
// so nil always means "unreadable".
func DecodeWeeks(raw []byte) []WeekEntry {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}

	arr := extractWeeksArray(parsed)
	if arr == nil {
		return nil
	}

	weeks := make([]WeekEntry, 0, len(arr))
	for _, v := range arr {
		week, ok := decodeWeekEntry(v)
		if !ok {
			return nil
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// EncodeWeeks renders weeks into the versioned envelope written by Save.
// Its output is always decodable by DecodeWeeks.
func EncodeWeeks(weeks []WeekEntry) ([]byte, error) {
	if weeks == nil {
		weeks = []WeekEntry{}
	}
	return json.Marshal(envelope{Version: EnvelopeVersion, Weeks: weeks})
}

// EncodeExport renders weeks into the envelope with an export timestamp,
// indented for human consumption. Still decodable by DecodeWeeks.
func EncodeExport(weeks []WeekEntry, now time.Time) ([]byte, error) {
	if weeks == nil {
		weeks = []WeekEntry{}
	}
	return json.MarshalIndent(envelope{
		Version:    EnvelopeVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Weeks:      weeks,
	}, "", "  ")
}

// extractWeeksArray supports both the legacy bare array and the versioned
// envelope. Any other top-level shape is unreadable.
func extractWeeksArray(parsed any) []any {
	if arr, ok := parsed.([]any); ok {
		return arr
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil
	}
	if version, ok := obj["version"].(float64); !ok || version != EnvelopeVersion {
		return nil
	}
	arr, ok := obj["weeks"].([]any)
	if !ok {
		return nil
	}
	return arr
}

func decodeWeekEntry(v any) (WeekEntry, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return WeekEntry{}, false
	}

	id, ok := obj["id"].(string)
	if !ok {
		return WeekEntry{}, false
	}
	weekOf, ok := obj["weekOf"].(string)
	if !ok {
		return WeekEntry{}, false
	}

	days, ok := decodeDays(obj["days"])
	if !ok {
		return WeekEntry{}, false
	}

	week := WeekEntry{ID: id, WeekOf: weekOf, Days: days}

	if week.AvgStepsPerDay, ok = optionalInt(obj, "avgStepsPerDay"); !ok {
		return WeekEntry{}, false
	}
	if week.TotalSets, ok = optionalInt(obj, "totalSets"); !ok {
		return WeekEntry{}, false
	}
	if week.TotalVolumeKg, ok = optionalFloat(obj, "totalVolumeKg"); !ok {
		return WeekEntry{}, false
	}
	if week.TrainingSessionsDescription, ok = optionalString(obj, "trainingSessionsDescription"); !ok {
		return WeekEntry{}, false
	}
	if week.Notes, ok = optionalString(obj, "notes"); !ok {
		return WeekEntry{}, false
	}
	if week.OtherNotes, ok = optionalString(obj, "otherNotes"); !ok {
		return WeekEntry{}, false
	}

	return week, true
}

// decodeDays requires the day map to cover exactly the seven fixed keys.
func decodeDays(v any) (map[DayID]DayEntry, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}

	days := make(map[DayID]DayEntry, len(DayIDs))
	for _, id := range DayIDs {
		raw, present := obj[string(id)]
		if !present {
			return nil, false
		}
		day, ok := decodeDayEntry(raw)
		if !ok {
			return nil, false
		}
		days[id] = day
	}
	return days, true
}

func decodeDayEntry(v any) (DayEntry, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return DayEntry{}, false
	}

	var day DayEntry
	if day.WeightKg, ok = optionalFloat(obj, "weightKg"); !ok {
		return DayEntry{}, false
	}
	if day.Calories, ok = optionalInt(obj, "calories"); !ok {
		return DayEntry{}, false
	}
	if day.ProteinG, ok = optionalInt(obj, "proteinG"); !ok {
		return DayEntry{}, false
	}
	return day, true
}

// optionalFloat accepts an absent key or a JSON number; anything else
// (string, bool, object, null) fails the record.
func optionalFloat(obj map[string]any, key string) (*float64, bool) {
	raw, present := obj[key]
	if !present {
		return nil, true
	}
	f, ok := raw.(float64)
	if !ok {
		return nil, false
	}
	return Float64(f), true
}

func optionalInt(obj map[string]any, key string) (*int, bool) {
	f, ok := optionalFloat(obj, key)
	if !ok {
		return nil, false
	}
	if f == nil {
		return nil, true
	}
	return Int(int(*f)), true
}

func optionalString(obj map[string]any, key string) (string, bool) {
	raw, present := obj[key]
	if !present {
		return "", true
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return s, true
}
