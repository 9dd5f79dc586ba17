// Package queries contains the read-side handlers of the tracker. All
// derived values are recomputed from the stored collection on every query;
// nothing is cached between calls.
package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// GetDashboardQuery requests the full dashboard view.
type GetDashboardQuery struct{}

// WeekCard pairs a week entry with its derived trend metrics for display.
type WeekCard struct {
	Entry domain.WeekEntry
	Trend domain.WeekTrendMetrics
}

// DashboardResult contains the week cards, newest week first.
type DashboardResult struct {
	Cards []WeekCard
}

// GetDashboardHandler handles dashboard queries.
type GetDashboardHandler struct {
	repo domain.WeekRepository
}

// NewGetDashboardHandler creates a new dashboard handler.
func NewGetDashboardHandler(repo domain.WeekRepository) *GetDashboardHandler {
	return &GetDashboardHandler{repo: repo}
}

// Handle executes the dashboard query.
func (h *GetDashboardHandler) Handle(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	weeks, err := loadOrSample(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	trends := domain.ComputeTrendMetrics(weeks)
	byWeekOf := make(map[string]domain.WeekTrendMetrics, len(trends))
	for _, t := range trends {
		byWeekOf[t.WeekOf] = t
	}

	sorted := make([]domain.WeekEntry, len(weeks))
	copy(sorted, weeks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekOf > sorted[j].WeekOf
	})

	cards := make([]WeekCard, 0, len(sorted))
	for _, week := range sorted {
		cards = append(cards, WeekCard{Entry: week, Trend: byWeekOf[week.WeekOf]})
	}
	return &DashboardResult{Cards: cards}, nil
}

// loadOrSample loads the stored collection, falling back to the sample
// dataset when nothing readable exists.
func loadOrSample(ctx context.Context, repo domain.WeekRepository) ([]domain.WeekEntry, error) {
	weeks, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weeks: %w", err)
	}
	if weeks == nil {
		weeks = domain.SampleWeeks()
	}
	return weeks, nil
}
