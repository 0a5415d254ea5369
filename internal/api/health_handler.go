package api

import (
	"net/http"

	"github.com/phrazzld/eks-decision-api/internal/api/shared"
)

// Version is reported by the liveness endpoints and the OpenAPI document.
const Version = "0.1.0"

// StatusHealthy is the fixed status token of a live server.
const StatusHealthy = "healthy"

// HealthCheck handles the liveness probe.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  StatusHealthy,
		Version: Version,
	})
}
