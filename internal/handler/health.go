package handler

import (
	"net/http"
)

// Health status values
const (
	HealthStatusOK = "ok"
)

// HandleHealthz provides a basic liveness check.
// The service holds no connections of its own, so liveness is all there is.
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
