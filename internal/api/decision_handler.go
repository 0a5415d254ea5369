package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/eks-decision-api/internal/api/shared"
	"github.com/phrazzld/eks-decision-api/internal/decision"
	"github.com/phrazzld/eks-decision-api/internal/platform/logger"
)

// ProfileParam is the name of the path parameter holding the profile name.
const ProfileParam = "profile_name"

// DecisionService is the read-only view of the profile table used by the
// handlers. *decision.Table implements it.
type DecisionService interface {
	Lookup(name string) (decision.Record, error)
	Profiles() []string
}

// DecisionHandler serves the profile listing and decision lookup endpoints.
type DecisionHandler struct {
	service DecisionService
	logger  *slog.Logger
}

// NewDecisionHandler creates a new DecisionHandler
func NewDecisionHandler(service DecisionService, logger *slog.Logger) *DecisionHandler {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("decision service cannot be nil for DecisionHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DecisionHandler{
		service: service,
		logger:  logger.With(slog.String("component", "decision_handler")),
	}
}

// ListProfiles handles GET /profiles requests.
func (h *DecisionHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	profiles := h.service.Profiles()
	log.Info("listed available profiles", slog.Int("count", len(profiles)))

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileListResponse{
		Profiles: profiles,
		Total:    len(profiles),
	})
}

// GetDecision handles GET /decision/{profile_name} requests.
// An unknown profile yields 404 with the lookup error as the detail.
func (h *DecisionHandler) GetDecision(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := profileFromPath(r)
	log.Info("fetching decision for profile", slog.String("profile", name))

	rec, err := h.service.Lookup(name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("retrieved decision for profile", slog.String("profile", name))
	shared.RespondWithJSON(w, r, http.StatusOK, ProfileDecisionResponse{
		Profile:  name,
		Decision: decisionToResponse(rec),
	})
}

// profileFromPath returns the profile path parameter decoded exactly once.
// chi routes on r.URL.RawPath when it is set, and the parameter is still
// escaped in that case; otherwise it comes from the already decoded Path.
func profileFromPath(r *http.Request) string {
	raw := chi.URLParam(r, ProfileParam)
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
