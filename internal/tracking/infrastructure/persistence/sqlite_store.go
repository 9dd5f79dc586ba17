package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// SQLiteWeekStore persists one row per week, keyed by week_of, with the
// week's JSON payload alongside. Load reassembles the rows into the wire
// array and routes it through the same decoder as the file store, so a
// corrupt row invalidates the whole collection.
type SQLiteWeekStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteWeekStore creates a SQLite-backed store.
func NewSQLiteWeekStore(db *sql.DB, logger *slog.Logger) *SQLiteWeekStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteWeekStore{db: db, logger: logger}
}

var _ domain.WeekRepository = (*SQLiteWeekStore)(nil)

// InitSchema creates the store's tables if they do not exist yet.
func (s *SQLiteWeekStore) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS weeks (
			week_of TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS store_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

// Load reads all week rows in week_of order and decodes them as one
// collection. An empty database (never saved) and any unreadable state
// both yield (nil, nil).
func (s *SQLiteWeekStore) Load(ctx context.Context) ([]domain.WeekEntry, error) {
	version, err := s.storedVersion(ctx)
	if err != nil {
		return nil, err
	}
	if version == 0 {
		// Nothing was ever saved.
		return nil, nil
	}
	if version != domain.EnvelopeVersion {
		s.logger.Warn("stored weeks have unsupported version, falling back", "version", version)
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM weeks ORDER BY week_of ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weeks: %w", err)
	}
	defer rows.Close()

	payloads := make([]json.RawMessage, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan week row: %w", err)
		}
		payloads = append(payloads, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read week rows: %w", err)
	}

	raw, err := json.Marshal(payloads)
	if err != nil {
		// A malformed payload cell is corrupt data, not an infra fault.
		s.logger.Warn("stored weeks failed reassembly, falling back", "error", err)
		return nil, nil
	}

	weeks := domain.DecodeWeeks(raw)
	if weeks == nil {
		s.logger.Warn("stored weeks failed validation, falling back")
		return nil, nil
	}
	return weeks, nil
}

// Save replaces the whole stored collection in one transaction.
func (s *SQLiteWeekStore) Save(ctx context.Context, weeks []domain.WeekEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM weeks`); err != nil {
		return fmt.Errorf("failed to clear weeks: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, week := range weeks {
		payload, err := json.Marshal(week)
		if err != nil {
			return fmt.Errorf("failed to encode week %s: %w", week.WeekOf, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO weeks (week_of, id, payload, updated_at) VALUES (?, ?, ?, ?)`,
			week.WeekOf, week.ID, string(payload), now)
		if err != nil {
			return fmt.Errorf("failed to insert week %s: %w", week.WeekOf, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO store_meta (key, value) VALUES ('version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(domain.EnvelopeVersion))
	if err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	return tx.Commit()
}

// storedVersion returns the recorded envelope version, or 0 when the store
// has never been written.
func (s *SQLiteWeekStore) storedVersion(ctx context.Context) (int, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM store_meta WHERE key = 'version'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read store version: %w", err)
	}

	version, err := strconv.Atoi(value)
	if err != nil {
		return -1, nil
	}
	return version, nil
}
