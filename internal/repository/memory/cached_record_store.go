package memory

import (
	"context"
	"time"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	snapshotKey = "snapshot"
	loadTimeout = 30 * time.Second
)

// CachedRecordStore keeps the last snapshot of next in process memory.
type CachedRecordStore struct {
	next  contract.RecordStore
	cache *cache.Cache
	group singleflight.Group
}

func NewCachedRecordStore(next contract.RecordStore, ttl time.Duration) *CachedRecordStore {
	// Purge expired items at twice the TTL
	c := cache.New(ttl, 2*ttl)
	return &CachedRecordStore{
		next:  next,
		cache: c,
	}
}

func (s *CachedRecordStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	if x, found := s.cache.Get(snapshotKey); found {
		return x.(*entity.Snapshot), nil
	}

	// Concurrent misses share one load. It must not fail for every waiter
	// when the caller that started it goes away.
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
	defer cancel()
	v, err, _ := s.group.Do(snapshotKey, func() (interface{}, error) {
		snap, err := s.next.Snapshot(loadCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(snapshotKey, snap, cache.DefaultExpiration)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.Snapshot), nil
}

// Invalidate drops the cached snapshot; the next call reloads from next.
func (s *CachedRecordStore) Invalidate(ctx context.Context) error {
	s.cache.Delete(snapshotKey)
	return nil
}
