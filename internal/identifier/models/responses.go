package models

// Validation outcome reasons. Empty means the identifier is valid.
const (
	ReasonLength           = "length"
	ReasonInvalidCharacter = "invalid_character"
	ReasonPrefix           = "prefix"
	ReasonChecksumMismatch = "checksum_mismatch"
)

// ValidationReport is the verdict on one identifier. A malformed or
// checksum-failing identifier is a normal outcome, not an HTTP error.
type ValidationReport struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Canonical string `json:"canonical,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
}

// GeneratedIdentifier is the response to a generate call.
type GeneratedIdentifier struct {
	Identifier string `json:"identifier"`
	Prefix     string `json:"prefix"`
	CheckDigit string `json:"check_digit"`
}
