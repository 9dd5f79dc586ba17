package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// UpdateWeekCommand edits the week-level fields of an existing week. All
// fields are raw user input: nil leaves the stored value unchanged, an
// empty string clears it.
type UpdateWeekCommand struct {
	WeekOf string

	AvgStepsPerDay *string
	TotalSets      *string
	TotalVolumeKg  *string

	TrainingSessionsDescription *string
	Notes                       *string
	OtherNotes                  *string
}

// UpdateWeekResult contains the updated week.
type UpdateWeekResult struct {
	Week domain.WeekEntry
}

// UpdateWeekHandler handles week-level field edits.
type UpdateWeekHandler struct {
	repo domain.WeekRepository
}

// NewUpdateWeekHandler creates a new update week handler.
func NewUpdateWeekHandler(repo domain.WeekRepository) *UpdateWeekHandler {
	return &UpdateWeekHandler{repo: repo}
}

// Handle executes the update week command. Any invalid numeric input fails
// the whole edit and leaves the saved collection untouched.
func (h *UpdateWeekHandler) Handle(ctx context.Context, cmd UpdateWeekCommand) (*UpdateWeekResult, error) {
	weeks, err := loadOrSeed(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	week, err := findByWeekOf(weeks, cmd.WeekOf)
	if err != nil {
		return nil, err
	}

	updated := week.Clone()

	if cmd.AvgStepsPerDay != nil {
		steps, err := domain.ParseOptionalCount(*cmd.AvgStepsPerDay)
		if err != nil {
			return nil, fmt.Errorf("avgStepsPerDay: %w", err)
		}
		updated.AvgStepsPerDay = steps
	}
	if cmd.TotalSets != nil {
		sets, err := domain.ParseOptionalCount(*cmd.TotalSets)
		if err != nil {
			return nil, fmt.Errorf("totalSets: %w", err)
		}
		updated.TotalSets = sets
	}
	if cmd.TotalVolumeKg != nil {
		volume, err := domain.ParseOptionalVolume(*cmd.TotalVolumeKg)
		if err != nil {
			return nil, fmt.Errorf("totalVolumeKg: %w", err)
		}
		updated.TotalVolumeKg = volume
	}

	if cmd.TrainingSessionsDescription != nil {
		updated.TrainingSessionsDescription = *cmd.TrainingSessionsDescription
	}
	if cmd.Notes != nil {
		updated.Notes = *cmd.Notes
	}
	if cmd.OtherNotes != nil {
		updated.OtherNotes = *cmd.OtherNotes
	}

	next, err := replaceByID(weeks, updated)
	if err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save weeks: %w", err)
	}

	return &UpdateWeekResult{Week: updated}, nil
}
