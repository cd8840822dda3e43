package store

import (
	"context"
	"sync"
	"time"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/pkg/platform/sentinel"
)

// InMemory is the development and test backend. Safe for concurrent use.
type InMemory struct {
	mu      sync.RWMutex
	records map[string]*models.Record
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[string]*models.Record)}
}

func (s *InMemory) Create(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.records[record.Code]; ok && existing.IsActive() {
		return sentinel.ErrConflict
	}
	clone := *record
	s.records[record.Code] = &clone
	return nil
}

func (s *InMemory) FindByCode(_ context.Context, code string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[code]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *record
	return &clone, nil
}

func (s *InMemory) Revoke(_ context.Context, code string, now time.Time) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[code]
	if !ok || !record.IsActive() {
		return nil, sentinel.ErrNotFound
	}
	if err := record.Revoke(now); err != nil {
		return nil, err
	}
	clone := *record
	return &clone, nil
}
