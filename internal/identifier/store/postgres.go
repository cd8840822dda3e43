package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/pkg/platform/sentinel"
)

// Postgres persists identifier records in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Schema is the DDL for the registry table. Applied by deploy tooling and
// by the integration test harness.
const Schema = `
CREATE TABLE IF NOT EXISTS identifier_records (
	id            UUID PRIMARY KEY,
	code          CHAR(9) NOT NULL,
	prefix        CHAR(1) NOT NULL,
	status        TEXT NOT NULL,
	registered_by TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS identifier_records_active_code
	ON identifier_records (code) WHERE status = 'active';
CREATE INDEX IF NOT EXISTS identifier_records_code ON identifier_records (code);
`

func (s *Postgres) Create(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO identifier_records (id, code, prefix, status, registered_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.Code,
		record.Prefix,
		record.Status,
		record.RegisteredBy,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create identifier record: %w", err)
	}
	return nil
}

// FindByCode returns the most recent record for a code, so a revoked
// registration stays visible until the code is registered again.
func (s *Postgres) FindByCode(ctx context.Context, code string) (*models.Record, error) {
	query := `
		SELECT id, code, prefix, status, registered_by, created_at, updated_at
		FROM identifier_records
		WHERE code = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find identifier record: %w", err)
	}
	return record, nil
}

// Revoke atomically flips the active record for a code to revoked and
// returns it. A single conditional UPDATE...RETURNING avoids TOCTOU races
// between concurrent revocations.
func (s *Postgres) Revoke(ctx context.Context, code string, now time.Time) (*models.Record, error) {
	query := `
		UPDATE identifier_records
		SET status = $2, updated_at = $3
		WHERE code = $1 AND status = $4
		RETURNING id, code, prefix, status, registered_by, created_at, updated_at
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query,
		code, models.RecordStatusRevoked, now, models.RecordStatusActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("revoke identifier record: %w", err)
	}
	return record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var record models.Record
	err := row.Scan(
		&record.ID,
		&record.Code,
		&record.Prefix,
		&record.Status,
		&record.RegisteredBy,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
