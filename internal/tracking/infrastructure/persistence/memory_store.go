package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
)

// MemoryWeekStore keeps the encoded collection in memory. It round-trips
// saves through the same envelope codec as the durable stores so tests
// exercise the real decode path.
type MemoryWeekStore struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemoryWeekStore creates an empty in-memory store.
func NewMemoryWeekStore() *MemoryWeekStore {
	return &MemoryWeekStore{}
}

var _ domain.WeekRepository = (*MemoryWeekStore)(nil)

// Load decodes the stored payload, or returns (nil, nil) when nothing has
// been saved yet or the payload is unreadable.
func (s *MemoryWeekStore) Load(ctx context.Context) ([]domain.WeekEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw == nil {
		return nil, nil
	}
	return domain.DecodeWeeks(s.raw), nil
}

// Save encodes and stores the collection.
func (s *MemoryWeekStore) Save(ctx context.Context, weeks []domain.WeekEntry) error {
	encoded, err := domain.EncodeWeeks(weeks)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = encoded
	return nil
}

// SetRaw replaces the stored payload directly. Test hook for corrupt data.
func (s *MemoryWeekStore) SetRaw(raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}
