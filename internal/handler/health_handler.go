package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports the initialization state; once ready it also pings the database.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	state := h.Readiness.State()
	if !h.Readiness.Ready() {
		writeSuccess(w, HealthResponse{Status: state.String()}, http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("database health check failed")
		writeSuccess(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
