// Package cache wraps a registry store with a Redis read-through cache.
// Lookups by code are the hot path (every downstream check hits them);
// writes invalidate so a revocation is visible on the next read.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/internal/identifier/store"
)

const keyPrefix = "nric:record:"

// Store decorates an inner store.Store. Cache failures degrade to the
// inner store rather than failing the request.
type Store struct {
	inner  store.Store
	client redis.UniversalClient
	ttl    time.Duration
}

var _ store.Store = (*Store)(nil)

// New wraps inner with a read-through cache holding entries for ttl.
func New(inner store.Store, client redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{inner: inner, client: client, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, record *models.Record) error {
	if err := s.inner.Create(ctx, record); err != nil {
		return err
	}
	// Invalidate rather than populate: the next read caches the stored
	// form, keeping one code path that serializes records.
	s.invalidate(ctx, record.Code)
	return nil
}

func (s *Store) FindByCode(ctx context.Context, code string) (*models.Record, error) {
	key := keyPrefix + code
	if payload, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var record models.Record
		if err := json.Unmarshal(payload, &record); err == nil {
			return &record, nil
		}
		// Corrupt entry: drop it and fall through to the store of record.
		s.invalidate(ctx, code)
	}

	record, err := s.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(record); err == nil {
		_ = s.client.Set(ctx, key, payload, s.ttl).Err()
	}
	return record, nil
}

func (s *Store) Revoke(ctx context.Context, code string, now time.Time) (*models.Record, error) {
	record, err := s.inner.Revoke(ctx, code, now)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, code)
	return record, nil
}

func (s *Store) invalidate(ctx context.Context, code string) {
	_ = s.client.Del(ctx, keyPrefix+code).Err()
}
