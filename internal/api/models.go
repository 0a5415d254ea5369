package api

import "github.com/phrazzld/eks-decision-api/internal/decision"

// DecisionResponse is the JSON form of a decision record.
type DecisionResponse struct {
	ComputeProfile      string `json:"compute_profile"`
	NetworkProfile      string `json:"network_profile"`
	AutoscalingProfile  string `json:"autoscaling_profile"`
	SecurityProfile     string `json:"security_profile"`
	AvailabilityProfile string `json:"availability_profile"`
}

// ProfileDecisionResponse wraps a decision with the profile name that was requested.
type ProfileDecisionResponse struct {
	Profile  string           `json:"profile"`
	Decision DecisionResponse `json:"decision"`
}

// HealthResponse is returned by the liveness endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ProfileListResponse lists all available profiles.
type ProfileListResponse struct {
	Profiles []string `json:"profiles"`
	Total    int      `json:"total"`
}

func decisionToResponse(rec decision.Record) DecisionResponse {
	return DecisionResponse{
		ComputeProfile:      rec.ComputeProfile,
		NetworkProfile:      rec.NetworkProfile,
		AutoscalingProfile:  rec.AutoscalingProfile,
		SecurityProfile:     rec.SecurityProfile,
		AvailabilityProfile: rec.AvailabilityProfile,
	}
}
