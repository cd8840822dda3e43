package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "no such record")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(nil, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "store identifier record")

	require.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeInternal))
	assert.Contains(t, err.Error(), "store identifier record")
}

func TestHasCode_SeesThroughFmtWrapping(t *testing.T) {
	inner := New(CodeValidation, "bad checksum")
	outer := fmt.Errorf("register: %w", inner)

	assert.True(t, HasCode(outer, CodeValidation))
	assert.True(t, Is(outer, CodeValidation))
}

func TestSentinelIdentity(t *testing.T) {
	// Package-level sentinels built with New compare by identity through
	// errors.Is, so callers can switch on the specific failure.
	sentinelErr := New(CodeValidation, "wrong length")
	wrapped := fmt.Errorf("parse: %w", sentinelErr)

	assert.True(t, errors.Is(wrapped, sentinelErr))
	assert.False(t, errors.Is(wrapped, New(CodeValidation, "wrong length")))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeConflict, CodeOf(New(CodeConflict, "dup")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
