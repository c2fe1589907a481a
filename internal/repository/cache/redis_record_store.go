package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const (
	logModule   = "RECORD_STORE"
	snapshotKey = "mentorlink:content:snapshot"
)

// RedisRecordStore shares one snapshot between instances through Redis.
// Any Redis failure falls through to next; Redis is never the source of truth.
type RedisRecordStore struct {
	next   contract.RecordStore
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisRecordStore(next contract.RecordStore, client *redis.Client, ttl time.Duration, logger logger.ILogger) *RedisRecordStore {
	return &RedisRecordStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisRecordStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	if s.client == nil {
		return s.next.Snapshot(ctx)
	}

	raw, err := s.client.Get(ctx, snapshotKey).Bytes()
	switch {
	case err == nil:
		var snap entity.Snapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return &snap, nil
		}
		s.logger.Warn(logModule, "Discarding undecodable cached snapshot", nil)
	case errors.Is(err, redis.Nil):
	default:
		s.logger.Warn(logModule, "Redis read failed, loading from store", map[string]interface{}{
			"error": err.Error(),
		})
	}

	snap, err := s.next.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return snap, nil
	}
	if err := s.client.Set(ctx, snapshotKey, payload, s.ttl).Err(); err != nil {
		s.logger.Warn(logModule, "Redis write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return snap, nil
}

// Invalidate deletes the shared snapshot.
func (s *RedisRecordStore) Invalidate(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, snapshotKey).Err()
}
