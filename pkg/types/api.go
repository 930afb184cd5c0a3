package types

import "time"

// AvailabilityReport is the result of one full quota scan.
type AvailabilityReport struct {
	// FetchedAt is when the scan completed.
	// example: 2025-06-01T12:00:00Z
	FetchedAt time.Time `json:"fetched_at" example:"2025-06-01T12:00:00Z"`
	// Candidates are regions with at least one chat and one embedding model available.
	Candidates []RegionAvailability `json:"candidates"`
	// Skipped lists regions dropped because their usage query failed.
	// example: ["westus2"]
	Skipped []string `json:"skipped,omitempty" example:"westus2"`
}

// Region returns the candidate entry for a region id, if present.
func (r *AvailabilityReport) Region(id string) (RegionAvailability, bool) {
	for _, c := range r.Candidates {
		if c.Region == id {
			return c, true
		}
	}
	return RegionAvailability{}, false
}

// RegionIDs returns the candidate region identifiers in scan order.
func (r *AvailabilityReport) RegionIDs() []string {
	ids := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		ids = append(ids, c.Region)
	}
	return ids
}

// RegionsResponse wraps the candidate region list returned by GET /v1/regions.
type RegionsResponse struct {
	// Candidate region identifiers.
	// example: ["eastus","swedencentral"]
	Regions []string `json:"regions" example:"eastus,swedencentral"`
	// FetchedAt is when the underlying scan completed.
	// example: 2025-06-01T12:00:00Z
	FetchedAt time.Time `json:"fetched_at" example:"2025-06-01T12:00:00Z"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: scan not ready
	Error string `json:"error" example:"scan not ready"`
	// HTTP status code.
	// example: 503
	Code int `json:"code" example:"503"`
}
