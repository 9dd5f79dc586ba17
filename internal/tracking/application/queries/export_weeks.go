package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// ExportWeeksQuery requests the collection rendered as an export file.
// Now stamps the payload and the suggested filename.
type ExportWeeksQuery struct {
	Now time.Time
}

// ExportResult is a ready-to-write export file.
type ExportResult struct {
	Filename string
	MIMEType string
	Content  []byte
}

// ExportWeeksHandler handles exports.
type ExportWeeksHandler struct {
	repo domain.WeekRepository
}

// NewExportWeeksHandler creates a new export handler.
func NewExportWeeksHandler(repo domain.WeekRepository) *ExportWeeksHandler {
	return &ExportWeeksHandler{repo: repo}
}

// Handle executes the export query. The payload is the same versioned
// envelope the stores write, so an export can always be imported back.
func (h *ExportWeeksHandler) Handle(ctx context.Context, query ExportWeeksQuery) (*ExportResult, error) {
	weeks, err := loadOrSample(ctx, h.repo)
	if err != nil {
		return nil, err
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	content, err := domain.EncodeExport(weeks, now)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	return &ExportResult{
		Filename: fmt.Sprintf("fitweek-weeks-%s.json", domain.FormatISODate(now)),
		MIMEType: "application/json",
		Content:  content,
	}, nil
}
