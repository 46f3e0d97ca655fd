package http

import (
	"net/http"
	"time"

	"github.com/6Ash6/TPIS-CRM-model/internal/store"
	"github.com/6Ash6/TPIS-CRM-model/pkg/crmsdk"
	"github.com/6Ash6/TPIS-CRM-model/pkg/httpx"
)

// LivezHandler is the liveness probe. It answers 200 whenever the process is
// up, no dependencies consulted.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, crmsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler is the readiness probe. It degrades to 503 when the store
// stops answering pings.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &crmsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, crmsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
