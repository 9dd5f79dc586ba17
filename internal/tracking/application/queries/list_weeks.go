package queries

import (
	"context"
	"sort"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// ListWeeksQuery requests the raw week entries.
type ListWeeksQuery struct{}

// ListWeeksResult contains the week entries, oldest first.
type ListWeeksResult struct {
	Weeks []domain.WeekEntry
}

// ListWeeksHandler handles week listing.
type ListWeeksHandler struct {
	repo domain.WeekRepository
}

// NewListWeeksHandler creates a new list weeks handler.
func NewListWeeksHandler(repo domain.WeekRepository) *ListWeeksHandler {
	return &ListWeeksHandler{repo: repo}
}

// Handle executes the list weeks query.
func (h *ListWeeksHandler) Handle(ctx context.Context, query ListWeeksQuery) (*ListWeeksResult, error) {
	weeks, err := loadOrSample(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.WeekEntry, len(weeks))
	copy(sorted, weeks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WeekOf < sorted[j].WeekOf
	})
	return &ListWeeksResult{Weeks: sorted}, nil
}
