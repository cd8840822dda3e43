package models

// ValidateRequest carries a raw, user-supplied identifier string.
type ValidateRequest struct {
	Identifier string `json:"identifier"`
}

// RegisterRequest carries the identifier to add to the registry.
type RegisterRequest struct {
	Identifier string `json:"identifier"`
}

// GenerateRequest selects the series for a generated identifier.
type GenerateRequest struct {
	Prefix string `json:"prefix"`
}
