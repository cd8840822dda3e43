// Package identifier exposes the identifier domain's service and handler
// to the composition root without leaking the internal sub-packages.
package identifier

import (
	"log/slog"

	"nric-gateway/internal/identifier/handler"
	"nric-gateway/internal/identifier/service"
	"nric-gateway/internal/identifier/store"
	"nric-gateway/internal/platform/metrics"
	"nric-gateway/internal/platform/middleware"
)

// Service exposes identifier validation, generation, and registry
// orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the identifier service.
type Handler = handler.Handler

// NewService constructs the identifier service over a registry store.
func NewService(registry store.Store) *Service {
	return service.New(registry)
}

// NewHandler constructs the HTTP handler for identifier routes.
func NewHandler(s *Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return handler.New(s, logger, m, validator)
}
