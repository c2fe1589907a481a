package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mentorlink-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls atomic.Int32
	snap  *entity.Snapshot
	err   error
}

func (s *countingStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	s.calls.Add(1)
	return s.snap, s.err
}

func TestStaticRecordStore(t *testing.T) {
	snap := &entity.Snapshot{Mentors: []entity.Mentor{{Id: "m1", Name: "Kim"}}}
	got, err := NewStaticRecordStore(snap).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, got)

	empty, err := NewStaticRecordStore(nil).Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}

func TestCachedRecordStoreHitsNextOnce(t *testing.T) {
	next := &countingStore{snap: &entity.Snapshot{}}
	store := NewCachedRecordStore(next, time.Minute)

	for i := 0; i < 3; i++ {
		_, err := store.Snapshot(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), next.calls.Load())
}

func TestCachedRecordStoreInvalidate(t *testing.T) {
	next := &countingStore{snap: &entity.Snapshot{}}
	store := NewCachedRecordStore(next, time.Minute)

	_, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Invalidate(context.Background()))
	_, err = store.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCachedRecordStoreDoesNotCacheErrors(t *testing.T) {
	next := &countingStore{err: errors.New("db down")}
	store := NewCachedRecordStore(next, time.Minute)

	_, err := store.Snapshot(context.Background())
	require.Error(t, err)

	next.err = nil
	next.snap = &entity.Snapshot{}
	got, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCachedRecordStoreConcurrentReads(t *testing.T) {
	snap := &entity.Snapshot{Lectures: []entity.Lecture{{Id: "l1"}}}
	store := NewCachedRecordStore(&countingStore{snap: snap}, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.Snapshot(context.Background())
			assert.NoError(t, err)
			assert.Same(t, snap, got)
		}()
	}
	wg.Wait()
}

type ctxAwareStore struct {
	snap *entity.Snapshot
}

func (s *ctxAwareStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.snap, nil
}

func TestCachedRecordStoreLoadSurvivesCanceledCaller(t *testing.T) {
	snap := &entity.Snapshot{Mentors: []entity.Mentor{{Id: "m1"}}}
	store := NewCachedRecordStore(&ctxAwareStore{snap: snap}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, snap, got)

	// The load was cached for the next caller too
	got, err = store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Same(t, snap, got)
}
