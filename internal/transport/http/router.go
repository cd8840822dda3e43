// Package httptransport assembles the public router. It mounts domain
// handlers and the operational endpoints; all business logic stays behind
// the handler interfaces.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nric-gateway/internal/identifier"
)

// NewRouter wires all endpoints: the identifier API, liveness, and
// Prometheus metrics.
func NewRouter(identifiers *identifier.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	identifiers.Register(r)

	return r
}
