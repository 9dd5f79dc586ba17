package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// ErrInvalidImport is returned when an import payload fails decoding. A
// single malformed record rejects the whole file; nothing is replaced.
var ErrInvalidImport = errors.New("import data is not a valid weeks payload")

// ImportWeeksCommand replaces the stored collection with the weeks decoded
// from Data, which may be either the versioned envelope or the legacy bare
// array.
type ImportWeeksCommand struct {
	Data []byte
}

// ImportWeeksResult reports how many weeks were imported.
type ImportWeeksResult struct {
	Count int
}

// ImportWeeksHandler handles collection imports.
type ImportWeeksHandler struct {
	repo domain.WeekRepository
}

// NewImportWeeksHandler creates a new import handler.
func NewImportWeeksHandler(repo domain.WeekRepository) *ImportWeeksHandler {
	return &ImportWeeksHandler{repo: repo}
}

// Handle executes the import command.
func (h *ImportWeeksHandler) Handle(ctx context.Context, cmd ImportWeeksCommand) (*ImportWeeksResult, error) {
	weeks := domain.DecodeWeeks(cmd.Data)
	if weeks == nil {
		return nil, ErrInvalidImport
	}

	if err := h.repo.Save(ctx, weeks); err != nil {
		return nil, fmt.Errorf("failed to save weeks: %w", err)
	}
	return &ImportWeeksResult{Count: len(weeks)}, nil
}
