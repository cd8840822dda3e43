// Package nric implements the Singapore/Malaysia NRIC and FIN identifier
// scheme: one prefix letter, seven decimal digits, and one check letter
// computed per Ngiam Shih Tung's published algorithm.
//
// Identifiers are immutable values. Construct via New, NewWithCheckDigit,
// or Parse at trust boundaries; direct struct literals are impossible from
// outside the package, so every Identifier in circulation satisfies the
// structural invariants (exactly seven digits in [0,9], a known prefix).
//
// A constructed value is not necessarily checksum-correct: Parse and
// NewWithCheckDigit store the supplied check letter verbatim. Valid is the
// only operation that judges checksum correctness.
package nric

import (
	"strings"

	dErrors "nric-gateway/pkg/domain-errors"
)

// Closed error taxonomy. All construction failures are one of these three;
// Valid and String never fail.
var (
	// ErrLength reports a digit sequence that is not exactly seven digits,
	// or an input string that is not exactly nine characters.
	ErrLength = dErrors.New(dErrors.CodeValidation, "identifier must be nine characters: prefix, seven digits, check letter")

	// ErrInvalidCharacter reports a character outside the alphabet allowed
	// at its position, or a digit value outside [0,9].
	ErrInvalidCharacter = dErrors.New(dErrors.CodeValidation, "identifier contains a character outside its allowed alphabet")

	// ErrPrefix reports a leading letter that is not one of S, T, F, G.
	ErrPrefix = dErrors.New(dErrors.CodeValidation, "identifier prefix must be one of S, T, F, G")
)

// Prefix is the leading letter of an identifier. It selects the checksum
// offset and the check-letter alphabet.
type Prefix string

// The four recognized prefixes. S/T are NRIC (citizens and residents),
// F/G are FIN (foreign identification).
const (
	PrefixS Prefix = "S"
	PrefixT Prefix = "T"
	PrefixF Prefix = "F"
	PrefixG Prefix = "G"
)

// ParsePrefix constructs a Prefix from external input.
// Returns ErrPrefix for anything other than S, T, F, G.
func ParsePrefix(s string) (Prefix, error) {
	p := Prefix(s)
	if !p.IsValid() {
		return "", ErrPrefix
	}
	return p, nil
}

// IsValid reports whether the prefix is one of the four recognized letters.
func (p Prefix) IsValid() bool {
	switch p {
	case PrefixS, PrefixT, PrefixF, PrefixG:
		return true
	}
	return false
}

// String returns the single-letter form of the prefix.
func (p Prefix) String() string {
	return string(p)
}

// checksumOffset is the constant folded into the weighted sum: 0 for the
// 1900-series prefixes (S, F), 4 for the 2000-series prefixes (T, G).
func (p Prefix) checksumOffset() int {
	if p == PrefixT || p == PrefixG {
		return 4
	}
	return 0
}

// checkAlphabet is the 11-entry lookup table indexed by the weighted sum
// mod 11. NRIC prefixes use the UIN table, FIN prefixes the FIN table.
func (p Prefix) checkAlphabet() string {
	if p == PrefixF || p == PrefixG {
		return finCheckAlphabet
	}
	return uinCheckAlphabet
}

const (
	uinCheckAlphabet = "JZIHGFEDCBA"
	finCheckAlphabet = "XWUTRQPNMLK"

	// checkLetters is the union of both alphabets: every letter that can
	// legally appear in the ninth position. O, S, V and Y are never check
	// letters.
	checkLetters = "ABCDEFGHIJKLMNPQRTUWXZ"
)

// checksumWeights apply positionally to the seven body digits.
var checksumWeights = [digitCount]int{2, 7, 6, 5, 4, 3, 2}

const digitCount = 7

// Identifier is an immutable NRIC/FIN value. The zero Identifier is not
// meaningful; obtain values via New, NewWithCheckDigit, or Parse.
type Identifier struct {
	prefix Prefix
	digits [digitCount]int
	check  byte
}

// New builds an Identifier from a prefix and seven body digits, computing
// the check letter. The result always satisfies Valid.
func New(prefix Prefix, digits []int) (Identifier, error) {
	body, err := toBody(prefix, digits)
	if err != nil {
		return Identifier{}, err
	}
	check, err := ComputeCheckDigit(prefix, digits)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{prefix: prefix, digits: body, check: check}, nil
}

// NewWithCheckDigit builds an Identifier storing the supplied check letter
// verbatim, with no cross-check against the computed value. This is how a
// deliberately invalid value is constructed for Valid to reject.
func NewWithCheckDigit(prefix Prefix, digits []int, check byte) (Identifier, error) {
	body, err := toBody(prefix, digits)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{prefix: prefix, digits: body, check: check}, nil
}

// Parse constructs an Identifier from its nine-character string form.
// The check letter is stored verbatim, never recomputed or corrected;
// call Valid to judge checksum correctness. Parse is strict: uppercase
// only, no surrounding whitespace. Normalize at the boundary that owns
// user input.
func Parse(text string) (Identifier, error) {
	if len(text) != 1+digitCount+1 {
		return Identifier{}, ErrLength
	}

	prefix, err := ParsePrefix(text[:1])
	if err != nil {
		// Reported as a character fault: at this point the input has the
		// right length and the first position simply holds a letter outside
		// the prefix alphabet.
		return Identifier{}, ErrInvalidCharacter
	}

	var digits [digitCount]int
	for i := 0; i < digitCount; i++ {
		c := text[1+i]
		if c < '0' || c > '9' {
			return Identifier{}, ErrInvalidCharacter
		}
		digits[i] = int(c - '0')
	}

	check := text[len(text)-1]
	if strings.IndexByte(checkLetters, check) < 0 {
		return Identifier{}, ErrInvalidCharacter
	}

	return Identifier{prefix: prefix, digits: digits, check: check}, nil
}

// ComputeCheckDigit computes the check letter for a prefix and seven body
// digits. Pure and deterministic: identical inputs always yield the same
// letter.
func ComputeCheckDigit(prefix Prefix, digits []int) (byte, error) {
	if !prefix.IsValid() {
		return 0, ErrPrefix
	}
	if len(digits) != digitCount {
		return 0, ErrLength
	}
	sum := prefix.checksumOffset()
	for i, d := range digits {
		if d < 0 || d > 9 {
			return 0, ErrInvalidCharacter
		}
		sum += d * checksumWeights[i]
	}
	return prefix.checkAlphabet()[sum%11], nil
}

// Prefix returns the identifier's prefix letter.
func (id Identifier) Prefix() Prefix {
	return id.prefix
}

// Digits returns a copy of the seven body digits.
func (id Identifier) Digits() [digitCount]int {
	return id.digits
}

// CheckDigit returns the stored check letter, which may differ from the
// computed one for values built via NewWithCheckDigit or Parse.
func (id Identifier) CheckDigit() byte {
	return id.check
}

// Valid reports whether the stored check letter matches the one computed
// from the prefix and digits. Infallible: a failed recomputation (only
// possible on a zero Identifier, which the constructors never produce)
// reports false rather than erroring.
func (id Identifier) Valid() bool {
	check, err := ComputeCheckDigit(id.prefix, id.digits[:])
	if err != nil {
		return false
	}
	return check == id.check
}

// String renders the canonical nine-character form: prefix letter, seven
// digits, check letter. Inverse of Parse for any parsed input.
func (id Identifier) String() string {
	var b strings.Builder
	b.Grow(1 + digitCount + 1)
	b.WriteString(string(id.prefix))
	for _, d := range id.digits {
		b.WriteByte(byte('0' + d))
	}
	b.WriteByte(id.check)
	return b.String()
}

// toBody validates the components-path inputs shared by both constructors.
func toBody(prefix Prefix, digits []int) ([digitCount]int, error) {
	var body [digitCount]int
	if !prefix.IsValid() {
		return body, ErrPrefix
	}
	if len(digits) != digitCount {
		return body, ErrLength
	}
	for i, d := range digits {
		if d < 0 || d > 9 {
			return body, ErrInvalidCharacter
		}
		body[i] = d
	}
	return body, nil
}
