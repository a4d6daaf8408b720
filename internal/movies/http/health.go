package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/pkg/httpx"
	"github.com/aussiebroadwan/movies/pkg/sdk"
)

// HealthHandler godoc
//
//	@Summary		Health Check
//	@Description	Returns {"status":"healthy"} while the process is serving requests.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	sdk.HealthResponse	"status"
//	@Router			/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, sdk.HealthResponse{Status: "healthy"})
	}
}

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always 200 while the service is running, with uptime and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	sdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, sdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Checks the database connection and that a TMDB API key is configured.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	sdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	sdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, tmdbConfigured bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"tmdb":     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !tmdbConfigured {
			checks["tmdb"] = "error: no api key configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, sdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
