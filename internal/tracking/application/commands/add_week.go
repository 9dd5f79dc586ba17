// Package commands contains the write-side handlers of the tracker. Each
// handler loads the current week collection, applies one change to a copy,
// and saves the whole collection back; derived metrics are never written.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// ErrWeekNotFound is returned when a command targets a week that is not in
// the collection.
var ErrWeekNotFound = errors.New("week not found")

// AddWeekCommand creates a new empty tracked week. WeekOf is an optional
// ISO date anywhere inside the desired week; when empty, the week
// containing Now is used. Either way the date is normalized to its Monday
// and advanced past already-tracked weeks so weekOf values stay unique.
type AddWeekCommand struct {
	WeekOf string
	Now    time.Time
}

// AddWeekResult contains the created week and the saved collection.
type AddWeekResult struct {
	Week  domain.WeekEntry
	Weeks []domain.WeekEntry
}

// AddWeekHandler handles week creation.
type AddWeekHandler struct {
	repo domain.WeekRepository
}

// NewAddWeekHandler creates a new add week handler.
func NewAddWeekHandler(repo domain.WeekRepository) *AddWeekHandler {
	return &AddWeekHandler{repo: repo}
}

// Handle executes the add week command.
func (h *AddWeekHandler) Handle(ctx context.Context, cmd AddWeekCommand) (*AddWeekResult, error) {
	weeks, err := loadOrSeed(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	start := cmd.WeekOf
	if start == "" {
		now := cmd.Now
		if now.IsZero() {
			now = time.Now()
		}
		start = domain.MondayOf(now)
	} else {
		start, err = domain.NormalizeToMonday(start)
		if err != nil {
			return nil, err
		}
	}

	existing := make(map[string]bool, len(weeks))
	for _, w := range weeks {
		existing[w.WeekOf] = true
	}
	weekOf, err := domain.NextUntrackedWeek(start, existing)
	if err != nil {
		return nil, err
	}

	week := domain.NewWeekEntry(weekOf)
	weeks = append(weeks, week)

	if err := h.repo.Save(ctx, weeks); err != nil {
		return nil, fmt.Errorf("failed to save weeks: %w", err)
	}

	return &AddWeekResult{Week: week, Weeks: weeks}, nil
}

// loadOrSeed loads the stored collection, falling back to the sample
// dataset when nothing readable exists.
func loadOrSeed(ctx context.Context, repo domain.WeekRepository) ([]domain.WeekEntry, error) {
	weeks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks: %w", err)
	}
	if weeks == nil {
		weeks = domain.SampleWeeks()
	}
	return weeks, nil
}

// replaceByID swaps the week with the same id into a copy of the
// collection, leaving the original slice untouched.
func replaceByID(weeks []domain.WeekEntry, updated domain.WeekEntry) ([]domain.WeekEntry, error) {
	next := make([]domain.WeekEntry, len(weeks))
	copy(next, weeks)
	for i, w := range next {
		if w.ID == updated.ID {
			next[i] = updated
			return next, nil
		}
	}
	return nil, ErrWeekNotFound
}

// findByWeekOf locates a week by its normalized Monday date.
func findByWeekOf(weeks []domain.WeekEntry, weekOf string) (domain.WeekEntry, error) {
	normalized, err := domain.NormalizeToMonday(weekOf)
	if err != nil {
		return domain.WeekEntry{}, err
	}
	for _, w := range weeks {
		if w.WeekOf == normalized {
			return w, nil
		}
	}
	return domain.WeekEntry{}, fmt.Errorf("%w: %s", ErrWeekNotFound, normalized)
}
