package contract

import (
	"context"

	"mentorlink-be/internal/entity"
)

// RecordStore is the read side used by search. Implementations return a
// snapshot that callers must treat as immutable.
type RecordStore interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
}
