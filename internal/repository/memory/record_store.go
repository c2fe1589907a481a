package memory

import (
	"context"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/repository/contract"
)

// StaticRecordStore serves a fixed snapshot.
type StaticRecordStore struct {
	snapshot *entity.Snapshot
}

func NewStaticRecordStore(snapshot *entity.Snapshot) contract.RecordStore {
	if snapshot == nil {
		snapshot = &entity.Snapshot{}
	}
	return &StaticRecordStore{snapshot: snapshot}
}

func (s *StaticRecordStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	return s.snapshot, nil
}
