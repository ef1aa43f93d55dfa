package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
)

// Probe reports the health of a dependency. A non-nil error marks the service unhealthy;
// the returned report is written either way.
type Probe func(ctx context.Context) (any, error)

// HealthCheck is the health check handler.
type HealthCheck struct {
	Probe Probe
}

// New returns a HealthCheck backed by probe.
func New(probe Probe) HealthCheck {
	return HealthCheck{Probe: probe}
}

// Handler is used to control the flow of GET /health endpoint
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	var report any = map[string]string{"status": "ok"}

	if hc.Probe != nil {
		res, err := hc.Probe(r.Context())
		if err != nil {
			status = http.StatusServiceUnavailable
		}
		if res != nil {
			report = res
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}
