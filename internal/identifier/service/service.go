// Package service owns identifier orchestration: input normalization,
// checksum verdicts, and registry rules. Stores are pure I/O; handlers are
// pure transport.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/internal/identifier/store"
	dErrors "nric-gateway/pkg/domain-errors"
	"nric-gateway/pkg/nric"
	"nric-gateway/pkg/platform/sentinel"
)

// Service exposes identifier validation, generation, and registry
// operations.
type Service struct {
	registry store.Store
}

func New(registry store.Store) *Service {
	return &Service{registry: registry}
}

// Normalize reduces user input to the core's strict form: surrounding
// whitespace stripped, letters uppercased. This is the single place raw
// input is massaged; pkg/nric stays strict.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate judges a raw identifier string. Malformed input and checksum
// failure are verdicts, not errors; Validate itself never fails.
func (s *Service) Validate(_ context.Context, raw string) *models.ValidationReport {
	report := &models.ValidationReport{Input: raw}

	id, err := nric.Parse(Normalize(raw))
	if err != nil {
		report.Reason = reasonFor(err)
		return report
	}

	report.Canonical = id.String()
	report.Prefix = id.Prefix().String()
	if !id.Valid() {
		report.Reason = models.ReasonChecksumMismatch
		return report
	}

	report.Valid = true
	return report
}

// Generate produces a fresh checksum-valid identifier in the given series.
func (s *Service) Generate(_ context.Context, rawPrefix string) (*models.GeneratedIdentifier, error) {
	prefix, err := nric.ParsePrefix(Normalize(rawPrefix))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "prefix must be one of S, T, F, G")
	}
	id, err := nric.Generate(prefix)
	if err != nil {
		return nil, err
	}
	return &models.GeneratedIdentifier{
		Identifier: id.String(),
		Prefix:     id.Prefix().String(),
		CheckDigit: string(id.CheckDigit()),
	}, nil
}

// Register adds a checksum-valid identifier to the registry. The raw input
// is normalized and fully validated first; only canonical, valid codes are
// ever stored.
func (s *Service) Register(ctx context.Context, raw, registeredBy string) (*models.Record, error) {
	id, err := nric.Parse(Normalize(raw))
	if err != nil {
		return nil, err
	}
	if !id.Valid() {
		return nil, dErrors.New(dErrors.CodeValidation, "check digit does not match the identifier body")
	}

	record := models.NewRecord(id.String(), id.Prefix().String(), registeredBy, time.Now().UTC())
	if err := s.registry.Create(ctx, record); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "identifier is already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store identifier record")
	}
	return record, nil
}

// Lookup fetches the registry record for an identifier. The input must be
// well-formed; checksum validity is not required to look it up, since a
// caller may legitimately ask about a code it was handed.
func (s *Service) Lookup(ctx context.Context, raw string) (*models.Record, error) {
	id, err := nric.Parse(Normalize(raw))
	if err != nil {
		return nil, err
	}
	record, err := s.registry.FindByCode(ctx, id.String())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "identifier is not registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load identifier record")
	}
	return record, nil
}

// Revoke retires the active registration for an identifier.
func (s *Service) Revoke(ctx context.Context, raw string) (*models.Record, error) {
	id, err := nric.Parse(Normalize(raw))
	if err != nil {
		return nil, err
	}
	record, err := s.registry.Revoke(ctx, id.String(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no active registration for identifier")
		}
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "revoke identifier record")
	}
	return record, nil
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, nric.ErrLength):
		return models.ReasonLength
	case errors.Is(err, nric.ErrPrefix):
		return models.ReasonPrefix
	default:
		return models.ReasonInvalidCharacter
	}
}
