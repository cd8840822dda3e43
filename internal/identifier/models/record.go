package models

import (
	"time"

	"github.com/google/uuid"

	dErrors "nric-gateway/pkg/domain-errors"
)

// RecordStatus is the lifecycle state of a registered identifier.
type RecordStatus string

const (
	RecordStatusActive  RecordStatus = "active"
	RecordStatusRevoked RecordStatus = "revoked"
)

// Record is a registered identifier tracked by the gateway.
//
// Invariants:
//   - Code is the canonical nine-character form and is checksum-valid at
//     registration time (the service rejects anything else)
//   - Code is unique across the registry
//   - Status transitions: active → revoked only; a revoked record is never
//     reactivated, it is re-registered under a new record
//   - CreatedAt is immutable after construction
type Record struct {
	ID           uuid.UUID    `json:"id"`
	Code         string       `json:"code"`
	Prefix       string       `json:"prefix"`
	Status       RecordStatus `json:"status"`
	RegisteredBy string       `json:"registered_by,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewRecord constructs an active record for a canonical identifier code.
func NewRecord(code, prefix, registeredBy string, now time.Time) *Record {
	return &Record{
		ID:           uuid.New(),
		Code:         code,
		Prefix:       prefix,
		Status:       RecordStatusActive,
		RegisteredBy: registeredBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *Record) IsActive() bool {
	return r.Status == RecordStatusActive
}

// Revoke transitions the record to revoked. Revoking twice is an
// invariant violation surfaced to the caller.
func (r *Record) Revoke(now time.Time) error {
	if r.Status == RecordStatusRevoked {
		return dErrors.New(dErrors.CodeInvariantViolation, "record is already revoked")
	}
	r.Status = RecordStatusRevoked
	r.UpdatedAt = now
	return nil
}
