package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/ums/internal/ums/store"
	"github.com/aussiebroadwan/ums/pkg/httpx"
	"github.com/aussiebroadwan/ums/pkg/slogx"
	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

func healthBody(status string, startTime time.Time, version string) umssdk.HealthResponse {
	return umssdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(startTime).Round(time.Second).String(),
		Version: version,
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe. Answers 200 whenever the process is serving requests; the database is not consulted.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	umssdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthBody("ok", startTime, version))
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Pings the account database; 503 until it answers.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	umssdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	umssdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := healthBody("ok", startTime, version)
		body.Checks = &umssdk.HealthChecks{Database: "ok"}

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness: database ping failed", "err", err)
			body.Status = "degraded"
			body.Checks.Database = "unavailable"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, body)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, body)
	}
}
