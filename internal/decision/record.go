package decision

// Record is the five-field decision contract for a single profile.
// It is a plain value type: every copy is independent of the table.
type Record struct {
	ComputeProfile      string `json:"compute_profile"      validate:"required"`
	NetworkProfile      string `json:"network_profile"      validate:"required"`
	AutoscalingProfile  string `json:"autoscaling_profile"  validate:"required"`
	SecurityProfile     string `json:"security_profile"     validate:"required"`
	AvailabilityProfile string `json:"availability_profile" validate:"required"`
}

// Profile names of the default table.
const (
	ProfileDevPublic            = "dev-public"
	ProfileDevInternal          = "dev-internal"
	ProfileProdPublicCritical   = "prod-public-critical"
	ProfileProdInternalCritical = "prod-internal-critical"
)

// defaultContracts is the literal definition behind Default.
func defaultContracts() map[string]Record {
	return map[string]Record{
		ProfileDevPublic: {
			ComputeProfile:      "cheap",
			NetworkProfile:      "public",
			AutoscalingProfile:  "limited",
			SecurityProfile:     "strict",
			AvailabilityProfile: "single_az",
		},
		ProfileDevInternal: {
			ComputeProfile:      "cheap",
			NetworkProfile:      "private",
			AutoscalingProfile:  "limited",
			SecurityProfile:     "normal",
			AvailabilityProfile: "single_az",
		},
		ProfileProdPublicCritical: {
			ComputeProfile:      "stable",
			NetworkProfile:      "public",
			AutoscalingProfile:  "full",
			SecurityProfile:     "strict",
			AvailabilityProfile: "multi_az",
		},
		ProfileProdInternalCritical: {
			ComputeProfile:      "stable",
			NetworkProfile:      "private",
			AutoscalingProfile:  "full",
			SecurityProfile:     "strict",
			AvailabilityProfile: "multi_az",
		},
	}
}
