package nric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "nric-gateway/pkg/domain-errors"
)

// Hand-computed vectors against the published scheme: offset 0 (S, F) or
// 4 (T, G), weights 2-7-6-5-4-3-2, sum mod 11, table lookup.
// For digits 1234567 the weighted sum is 106: 106 mod 11 = 7 (S/F series)
// and 110 mod 11 = 0 (T/G series).
var knownVectors = []struct {
	prefix Prefix
	digits []int
	check  byte
}{
	{PrefixS, []int{1, 2, 3, 4, 5, 6, 7}, 'D'}, // UIN table index 7
	{PrefixT, []int{1, 2, 3, 4, 5, 6, 7}, 'J'}, // UIN table index 0
	{PrefixF, []int{1, 2, 3, 4, 5, 6, 7}, 'N'}, // FIN table index 7
	{PrefixG, []int{1, 2, 3, 4, 5, 6, 7}, 'X'}, // FIN table index 0
	{PrefixS, []int{0, 0, 0, 0, 0, 0, 1}, 'I'}, // UIN table index 2
}

func TestComputeCheckDigit_KnownVectors(t *testing.T) {
	for _, tt := range knownVectors {
		t.Run(string(tt.prefix)+"-series", func(t *testing.T) {
			check, err := ComputeCheckDigit(tt.prefix, tt.digits)
			require.NoError(t, err)
			assert.Equal(t, string(tt.check), string(check))
		})
	}
}

func TestComputeCheckDigit_Deterministic(t *testing.T) {
	digits := []int{9, 8, 7, 6, 5, 4, 3}
	first, err := ComputeCheckDigit(PrefixG, digits)
	require.NoError(t, err)
	second, err := ComputeCheckDigit(PrefixG, digits)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeCheckDigit_Rejections(t *testing.T) {
	t.Run("rejects short digit sequence", func(t *testing.T) {
		_, err := ComputeCheckDigit(PrefixS, []int{1, 2, 3})
		require.ErrorIs(t, err, ErrLength)
	})

	t.Run("rejects long digit sequence", func(t *testing.T) {
		_, err := ComputeCheckDigit(PrefixS, []int{1, 2, 3, 4, 5, 6, 7, 8})
		require.ErrorIs(t, err, ErrLength)
	})

	t.Run("rejects out-of-range digit", func(t *testing.T) {
		_, err := ComputeCheckDigit(PrefixS, []int{1, 2, 3, 4, 5, 6, 10})
		require.ErrorIs(t, err, ErrInvalidCharacter)
	})

	t.Run("rejects unknown prefix", func(t *testing.T) {
		_, err := ComputeCheckDigit(Prefix("X"), []int{1, 2, 3, 4, 5, 6, 7})
		require.ErrorIs(t, err, ErrPrefix)
	})
}

func TestNew_ComputesCheckDigit(t *testing.T) {
	for _, tt := range knownVectors {
		id, err := New(tt.prefix, tt.digits)
		require.NoError(t, err)
		assert.Equal(t, string(tt.check), string(id.CheckDigit()))
		assert.True(t, id.Valid())
	}
}

func TestNew_LengthEnforcement(t *testing.T) {
	for _, digits := range [][]int{nil, {}, {1}, {1, 2, 3, 4, 5, 6}, {1, 2, 3, 4, 5, 6, 7, 8}} {
		_, err := New(PrefixS, digits)
		require.ErrorIs(t, err, ErrLength)
	}
}

func TestNewWithCheckDigit_StoresVerbatim(t *testing.T) {
	// The explicit check-digit path deliberately allows building a value
	// that fails Valid; that is how Valid is exercised.
	id, err := NewWithCheckDigit(PrefixS, []int{1, 2, 3, 4, 5, 6, 7}, 'A')
	require.NoError(t, err)
	assert.Equal(t, "S1234567A", id.String())
	assert.False(t, id.Valid())
}

func TestValid_AgreesWithComputedCheckDigit(t *testing.T) {
	digits := []int{1, 2, 3, 4, 5, 6, 7}
	want, err := ComputeCheckDigit(PrefixS, digits)
	require.NoError(t, err)

	correct, err := NewWithCheckDigit(PrefixS, digits, want)
	require.NoError(t, err)
	assert.True(t, correct.Valid())

	// Every other letter of the UIN alphabet must be rejected.
	for i := 0; i < len(uinCheckAlphabet); i++ {
		c := uinCheckAlphabet[i]
		if c == want {
			continue
		}
		flipped, err := NewWithCheckDigit(PrefixS, digits, c)
		require.NoError(t, err)
		assert.False(t, flipped.Valid(), "check letter %c must not validate", c)
	}
}

func TestParse_Valid(t *testing.T) {
	id, err := Parse("S1234567D")
	require.NoError(t, err)
	assert.Equal(t, PrefixS, id.Prefix())
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, id.Digits())
	assert.Equal(t, byte('D'), id.CheckDigit())
	assert.True(t, id.Valid())
}

func TestParse_StoresCheckDigitVerbatim(t *testing.T) {
	// Parse never corrects the check letter; the value round-trips even
	// though it fails Valid.
	id, err := Parse("S1234567A")
	require.NoError(t, err)
	assert.Equal(t, "S1234567A", id.String())
	assert.False(t, id.Valid())
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty string", "", ErrLength},
		{"too short", "S123456D", ErrLength},
		{"too long", "S12345678D", ErrLength},
		{"invalid prefix letter", "X1234567A", ErrInvalidCharacter},
		{"lowercase prefix", "s1234567D", ErrInvalidCharacter},
		{"non-digit in body", "S123456XA", ErrInvalidCharacter},
		{"check letter never used as checksum", "S1234567O", ErrInvalidCharacter},
		{"check letter V excluded", "S1234567V", ErrInvalidCharacter},
		{"digit as check letter", "S12345678", ErrInvalidCharacter},
		{"lowercase check letter", "S1234567d", ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	// Any string matching the full pattern round-trips exactly, whether or
	// not the checksum holds.
	inputs := []string{"S1234567D", "T7654321K", "F1234567N", "G0000000X", "S0000001I", "G9999999Z"}
	for _, s := range inputs {
		id, err := Parse(s)
		require.NoError(t, err, "parse %q", s)
		assert.Equal(t, s, id.String())
	}
}

func TestParsePrefix(t *testing.T) {
	for _, s := range []string{"S", "T", "F", "G"} {
		p, err := ParsePrefix(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
	for _, s := range []string{"", "A", "s", "SS"} {
		_, err := ParsePrefix(s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPrefix))
	}
}

func TestGenerate(t *testing.T) {
	for _, prefix := range []Prefix{PrefixS, PrefixT, PrefixF, PrefixG} {
		id, err := Generate(prefix)
		require.NoError(t, err)
		assert.Equal(t, prefix, id.Prefix())
		assert.True(t, id.Valid())
		assert.Len(t, id.String(), 9)

		// Generated values survive the strict parser.
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.True(t, parsed.Valid())
	}

	_, err := Generate(Prefix("Q"))
	require.ErrorIs(t, err, ErrPrefix)
}

func TestCheckAlphabets_CoverEveryResidue(t *testing.T) {
	// Both lookup tables carry exactly eleven entries, one per residue of
	// the weighted sum mod 11, with no repeats.
	for _, alphabet := range []string{uinCheckAlphabet, finCheckAlphabet} {
		require.Len(t, alphabet, 11)
		seen := map[byte]bool{}
		for i := 0; i < len(alphabet); i++ {
			assert.False(t, seen[alphabet[i]])
			seen[alphabet[i]] = true
		}
	}
}
