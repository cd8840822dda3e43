// Package store persists registered identifiers. Stores are interface-driven
// so the service can run against in-memory, PostgreSQL, or cached backends
// without rewiring business code. Stores are pure I/O; registration rules
// (checksum validity, normalization) belong in the service.
package store

import (
	"context"
	"time"

	"nric-gateway/internal/identifier/models"
)

// Store is the registry of identifier records, keyed by canonical code.
//
// Implementations return sentinel.ErrConflict from Create when the code is
// already registered with an active record, sentinel.ErrNotFound from
// FindByCode when no record exists for the code, and sentinel.ErrNotFound
// from Revoke when no active record exists for it.
type Store interface {
	Create(ctx context.Context, record *models.Record) error
	FindByCode(ctx context.Context, code string) (*models.Record, error)
	Revoke(ctx context.Context, code string, now time.Time) (*models.Record, error)
}
