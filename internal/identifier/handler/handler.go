// Package handler wires the identifier endpoints to the identifier
// service. Handlers decode, delegate, and translate; no checksum or
// registry logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nric-gateway/internal/identifier/models"
	"nric-gateway/internal/platform/metrics"
	"nric-gateway/internal/platform/middleware"
	dErrors "nric-gateway/pkg/domain-errors"
	"nric-gateway/pkg/platform/httputil"
	"nric-gateway/pkg/requestcontext"
)

// Service defines the interface for identifier operations.
type Service interface {
	Validate(ctx context.Context, raw string) *models.ValidationReport
	Generate(ctx context.Context, prefix string) (*models.GeneratedIdentifier, error)
	Register(ctx context.Context, raw, registeredBy string) (*models.Record, error)
	Lookup(ctx context.Context, raw string) (*models.Record, error)
	Revoke(ctx context.Context, raw string) (*models.Record, error)
}

// Handler handles identifier endpoints.
type Handler struct {
	service   Service
	logger    *slog.Logger
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

// New creates a new identifier Handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		service:   service,
		logger:    logger,
		metrics:   m,
		validator: validator,
	}
}

// Register mounts the identifier routes with their middleware chain.
// Validation, generation, and lookup are public; registry mutations
// require a bearer token.
func (h *Handler) Register(r chi.Router) {
	idRouter := chi.NewRouter()
	idRouter.Use(middleware.Recovery(h.logger))
	idRouter.Use(middleware.RequestID)
	idRouter.Use(middleware.Logger(h.logger))
	idRouter.Use(middleware.Timeout(10 * time.Second))
	idRouter.Use(middleware.ContentTypeJSON)
	idRouter.Use(middleware.Latency(h.metrics))

	idRouter.Post("/v1/identifiers/validate", h.handleValidate)
	idRouter.Post("/v1/identifiers/generate", h.handleGenerate)
	idRouter.Get("/v1/identifiers/{code}", h.handleLookup)

	idRouter.Group(func(g chi.Router) {
		g.Use(middleware.RequireAuth(h.validator, h.logger))
		g.Post("/v1/identifiers", h.handleRegister)
		g.Delete("/v1/identifiers/{code}", h.handleRevoke)
	})

	r.Mount("/", idRouter)
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ValidateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	report := h.service.Validate(ctx, req.Identifier)
	h.metrics.ObserveValidation(outcomeFor(report))

	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req models.GenerateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	generated, err := h.service.Generate(ctx, req.Prefix)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to generate identifier",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to generate identifier"))
		return
	}
	h.metrics.IncrementGenerated()

	httputil.WriteJSON(w, http.StatusOK, generated)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	subject := requestcontext.Subject(ctx)

	var req models.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.service.Register(ctx, req.Identifier, subject)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to register identifier", requestID, err)
		return
	}
	h.metrics.IncrementRegistrations()

	h.logger.InfoContext(ctx, "identifier registered",
		"request_id", requestID,
		"record_id", record.ID,
		"prefix", record.Prefix,
		"registered_by", subject,
	)
	httputil.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	record, err := h.service.Lookup(ctx, chi.URLParam(r, "code"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to look up identifier", requestID, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	record, err := h.service.Revoke(ctx, chi.URLParam(r, "code"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to revoke identifier", requestID, err)
		return
	}

	h.logger.InfoContext(ctx, "identifier revoked",
		"request_id", requestID,
		"record_id", record.ID,
		"revoked_by", requestcontext.Subject(ctx),
	)
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError surfaces expected domain outcomes as-is and masks
// anything unexpected as internal.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg, requestID string, err error) {
	for _, code := range []dErrors.Code{
		dErrors.CodeValidation,
		dErrors.CodeInvalidInput,
		dErrors.CodeBadRequest,
		dErrors.CodeNotFound,
		dErrors.CodeConflict,
		dErrors.CodeInvariantViolation,
	} {
		if dErrors.HasCode(err, code) {
			httputil.WriteError(w, err)
			return
		}
	}
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestID,
		"error", err.Error(),
	)
	httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, msg))
}

func outcomeFor(report *models.ValidationReport) string {
	switch {
	case report.Valid:
		return "valid"
	case report.Reason == models.ReasonChecksumMismatch:
		return "bad_checksum"
	default:
		return "malformed"
	}
}
