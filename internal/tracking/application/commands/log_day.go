package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// ErrUnknownDay is returned when a command names a day outside mon..sun.
var ErrUnknownDay = errors.New("unknown day")

// LogDayCommand updates one day's log within a week. The value fields are
// raw user input: nil leaves the stored value unchanged, an empty string
// clears it, anything else must parse as the field's type or the whole
// edit is rejected.
type LogDayCommand struct {
	WeekOf   string
	Day      domain.DayID
	WeightKg *string
	Calories *string
	ProteinG *string
}

// LogDayResult contains the updated week and its recomputed metrics.
type LogDayResult struct {
	Week    domain.WeekEntry
	Metrics *domain.WeekMetrics
}

// LogDayHandler handles day log updates.
type LogDayHandler struct {
	repo domain.WeekRepository
}

// NewLogDayHandler creates a new log day handler.
func NewLogDayHandler(repo domain.WeekRepository) *LogDayHandler {
	return &LogDayHandler{repo: repo}
}

// Handle executes the log day command. On validation failure the saved
// collection is left untouched.
func (h *LogDayHandler) Handle(ctx context.Context, cmd LogDayCommand) (*LogDayResult, error) {
	if !validDay(cmd.Day) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, cmd.Day)
	}

	weeks, err := loadOrSeed(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	week, err := findByWeekOf(weeks, cmd.WeekOf)
	if err != nil {
		return nil, err
	}

	// Route the edit through the draft boundary so the same validation
	// rules apply as in any other free-text edit.
	draft := domain.NewDraftWeek(week)
	day := draft.Days[cmd.Day]
	if cmd.WeightKg != nil {
		day.WeightKg = *cmd.WeightKg
	}
	if cmd.Calories != nil {
		day.Calories = *cmd.Calories
	}
	if cmd.ProteinG != nil {
		day.ProteinG = *cmd.ProteinG
	}
	draft.Days[cmd.Day] = day

	updated, err := domain.ApplyDraft(week, draft)
	if err != nil {
		return nil, err
	}

	next, err := replaceByID(weeks, updated)
	if err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save weeks: %w", err)
	}

	return &LogDayResult{
		Week:    updated,
		Metrics: domain.ComputeWeekMetrics(updated),
	}, nil
}

func validDay(day domain.DayID) bool {
	for _, id := range domain.DayIDs {
		if id == day {
			return true
		}
	}
	return false
}
