// Package persistence provides the week-collection stores behind the
// domain.WeekRepository port: a JSON file store, a SQLite store, and an
// in-memory store for tests. Every store routes loaded payloads through
// domain.DecodeWeeks, so malformed data degrades to the absent collection
// instead of an error.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// FileWeekStore persists the week collection as a single versioned JSON
// envelope on disk.
type FileWeekStore struct {
	path   string
	logger *slog.Logger
}

// NewFileWeekStore creates a file-backed store writing to path.
func NewFileWeekStore(path string, logger *slog.Logger) *FileWeekStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileWeekStore{path: path, logger: logger}
}

var _ domain.WeekRepository = (*FileWeekStore)(nil)

// Load reads and decodes the stored collection. A missing file or an
// unreadable payload yields (nil, nil).
func (s *FileWeekStore) Load(ctx context.Context) ([]domain.WeekEntry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("weeks file unreadable, falling back", "path", s.path, "error", err)
		}
		return nil, nil
	}

	weeks := domain.DecodeWeeks(raw)
	if weeks == nil {
		s.logger.Warn("weeks file failed validation, falling back", "path", s.path)
		return nil, nil
	}
	return weeks, nil
}

// Save writes the collection as the v1 envelope. The write goes through a
// temp file and rename so a crash cannot leave a half-written payload.
func (s *FileWeekStore) Save(ctx context.Context, weeks []domain.WeekEntry) error {
	encoded, err := domain.EncodeWeeks(weeks)
	if err != nil {
		return fmt.Errorf("failed to encode weeks: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".weeks-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write weeks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace weeks file: %w", err)
	}
	return nil
}
