package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/draftsensei/pkg/metrics"
)

// HealthHandler serves the Prometheus registry on /healthz. A scrape that
// succeeds is the liveness signal.
type HealthHandler struct {
	metrics http.Handler
}

// NewHealthHandler builds the handler over the service registry.
func NewHealthHandler() *HealthHandler {
	reg := metrics.GetRegistry()
	return &HealthHandler{
		metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			Registry:          reg,
		}),
	}
}

// HandleHealth handles GET /healthz. Content is negotiated from Accept:
// OpenMetrics when asked for, Prometheus text otherwise.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	h.metrics.ServeHTTP(w, r)
}
