package queries

import (
	"context"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// GetTrendsQuery requests the cross-week trend metrics.
type GetTrendsQuery struct{}

// TrendsResult contains one trend record per tracked week, oldest first.
type TrendsResult struct {
	Trends []domain.WeekTrendMetrics
}

// GetTrendsHandler handles trend queries.
type GetTrendsHandler struct {
	repo domain.WeekRepository
}

// NewGetTrendsHandler creates a new trends handler.
func NewGetTrendsHandler(repo domain.WeekRepository) *GetTrendsHandler {
	return &GetTrendsHandler{repo: repo}
}

// Handle executes the trends query.
func (h *GetTrendsHandler) Handle(ctx context.Context, query GetTrendsQuery) (*TrendsResult, error) {
	weeks, err := loadOrSample(ctx, h.repo)
	if err != nil {
		return nil, err
	}
	return &TrendsResult{Trends: domain.ComputeTrendMetrics(weeks)}, nil
}
