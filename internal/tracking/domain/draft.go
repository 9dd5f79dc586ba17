package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidDraft is returned when free-text edit input cannot be converted
// into a WeekEntry. Callers surface a validation message and keep the
// previously saved entry untouched.
var ErrInvalidDraft = errors.New("invalid draft input")

// DraftDay holds one day's edit fields as entered, before validation.
// An empty string means the field should be absent after the edit.
type DraftDay struct {
	WeightKg string
	Calories string
	ProteinG string
}

// DraftWeek holds a whole week's edit fields as entered.
type DraftWeek struct {
	AvgStepsPerDay string
	Days           map[DayID]DraftDay
}

// NewDraftWeek renders an existing week back into editable draft form.
func NewDraftWeek(base WeekEntry) DraftWeek {
	days := make(map[DayID]DraftDay, len(DayIDs))
	for _, id := range DayIDs {
		day := base.Days[id]
		days[id] = DraftDay{
			WeightKg: formatOptFloat(day.WeightKg),
			Calories: formatOptInt(day.Calories),
			ProteinG: formatOptInt(day.ProteinG),
		}
	}
	return DraftWeek{
		AvgStepsPerDay: formatOptInt(base.AvgStepsPerDay),
		Days:           days,
	}
}

// ApplyDraft parses a draft against a base week and returns the updated
// entry. Any invalid field fails the whole draft with ErrInvalidDraft; the
// base week is never modified.
func ApplyDraft(base WeekEntry, draft DraftWeek) (WeekEntry, error) {
	steps, err := ParseOptionalCount(draft.AvgStepsPerDay)
	if err != nil {
		return WeekEntry{}, fmt.Errorf("avgStepsPerDay: %w", err)
	}

	next := base.Clone()
	next.AvgStepsPerDay = steps

	for _, id := range DayIDs {
		d := draft.Days[id]

		weight, err := ParseOptionalWeight(d.WeightKg)
		if err != nil {
			return WeekEntry{}, fmt.Errorf("%s weightKg: %w", id, err)
		}
		calories, err := ParseOptionalCount(d.Calories)
		if err != nil {
			return WeekEntry{}, fmt.Errorf("%s calories: %w", id, err)
		}
		protein, err := ParseOptionalCount(d.ProteinG)
		if err != nil {
			return WeekEntry{}, fmt.Errorf("%s proteinG: %w", id, err)
		}

		next.Days[id] = DayEntry{WeightKg: weight, Calories: calories, ProteinG: protein}
	}

	return next, nil
}

var (
	intPattern   = regexp.MustCompile(`^\d+$`)
	floatPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParseOptionalCount parses a non-negative integer field. An empty or
// all-whitespace string parses to absent.
func ParseOptionalCount(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if !intPattern.MatchString(trimmed) {
		return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidDraft, raw)
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidDraft, raw)
	}
	return Int(v), nil
}

// ParseOptionalWeight parses a non-negative decimal weight. A comma is
// accepted as the decimal separator, but a value mixing comma and dot is
// rejected rather than guessed at.
func ParseOptionalWeight(raw string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if strings.Contains(trimmed, ",") && strings.Contains(trimmed, ".") {
		return nil, fmt.Errorf("%w: %q mixes comma and dot", ErrInvalidDraft, raw)
	}
	normalized := strings.ReplaceAll(trimmed, ",", ".")
	if !floatPattern.MatchString(normalized) {
		return nil, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidDraft, raw)
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidDraft, raw)
	}
	return Float64(v), nil
}

// ParseOptionalVolume parses a non-negative decimal training volume using
// the same rules as weights.
func ParseOptionalVolume(raw string) (*float64, error) {
	return ParseOptionalWeight(raw)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatOptInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
