package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newRecord(code string) *models.Record {
	return models.NewRecord(code, code[:1], "ops@test", time.Now().UTC())
}

// TestCreationAndLookups verifies the store correctly creates and
// retrieves records by canonical code.
func (s *MemoryStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds record by code", func() {
		record := s.newRecord("S1234567D")
		s.Require().NoError(s.store.Create(s.ctx, record))

		found, err := s.store.FindByCode(s.ctx, "S1234567D")
		s.Require().NoError(err)
		s.Equal(record.ID, found.ID)
		s.Equal(models.RecordStatusActive, found.Status)
	})

	s.Run("returns ErrNotFound for unknown code", func() {
		_, err := s.store.FindByCode(s.ctx, "T7654321K")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned record is a copy", func() {
		record := s.newRecord("F1234567N")
		s.Require().NoError(s.store.Create(s.ctx, record))

		found, err := s.store.FindByCode(s.ctx, "F1234567N")
		s.Require().NoError(err)
		found.Status = models.RecordStatusRevoked

		again, err := s.store.FindByCode(s.ctx, "F1234567N")
		s.Require().NoError(err)
		s.Equal(models.RecordStatusActive, again.Status)
	})
}

// TestCodeUniqueness verifies one active registration per code.
func (s *MemoryStoreSuite) TestCodeUniqueness() {
	s.Run("rejects duplicate active code", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRecord("S1234567D")))

		err := s.store.Create(s.ctx, s.newRecord("S1234567D"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("allows re-registration after revocation", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRecord("G0000000X")))
		_, err := s.store.Revoke(s.ctx, "G0000000X", time.Now().UTC())
		s.Require().NoError(err)

		s.Require().NoError(s.store.Create(s.ctx, s.newRecord("G0000000X")))
	})
}

// TestRevocation verifies the active-to-revoked transition.
func (s *MemoryStoreSuite) TestRevocation() {
	s.Run("revokes an active record", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRecord("S1234567D")))

		record, err := s.store.Revoke(s.ctx, "S1234567D", time.Now().UTC())
		s.Require().NoError(err)
		s.Equal(models.RecordStatusRevoked, record.Status)
	})

	s.Run("returns ErrNotFound for unknown code", func() {
		_, err := s.store.Revoke(s.ctx, "T0000000G", time.Now().UTC())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound when already revoked", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newRecord("F7654321X")))
		_, err := s.store.Revoke(s.ctx, "F7654321X", time.Now().UTC())
		s.Require().NoError(err)

		_, err = s.store.Revoke(s.ctx, "F7654321X", time.Now().UTC())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
