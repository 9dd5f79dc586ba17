package domain

import "context"

// WeekRepository is the persistence port for the week collection. The core
// never performs I/O itself; implementations own the storage medium and
// serialization, and route every loaded payload through DecodeWeeks.
//
// Load returns (nil, nil) when no readable collection exists (missing data,
// corrupt payload, wrong shape); callers substitute a default dataset. A
// non-nil error is reserved for infrastructure faults. Save always writes
// the versioned envelope.
type WeekRepository interface {
	Load(ctx context.Context) ([]WeekEntry, error)
	Save(ctx context.Context, weeks []WeekEntry) error
}
