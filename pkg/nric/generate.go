package nric

import (
	"crypto/rand"
	"math/big"

	dErrors "nric-gateway/pkg/domain-errors"
)

// Generate returns a fresh identifier with a cryptographically random
// seven-digit body and a computed check letter. The result always
// satisfies Valid.
func Generate(prefix Prefix) (Identifier, error) {
	if !prefix.IsValid() {
		return Identifier{}, ErrPrefix
	}
	digits := make([]int, digitCount)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return Identifier{}, dErrors.Wrap(err, dErrors.CodeInternal, "read random digits")
		}
		digits[i] = int(n.Int64())
	}
	return New(prefix, digits)
}
