package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/eks-decision-api/internal/api/shared"
	"github.com/phrazzld/eks-decision-api/internal/decision"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, decision.ErrProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message shown to the client for err.
// A profile-not-found message is surfaced verbatim because it only contains
// the requested name and the public list of profiles.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var notFound *decision.ProfileNotFoundError
	switch {
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.Is(err, decision.ErrProfileNotFound):
		return "Profile not found"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err, logging the details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
