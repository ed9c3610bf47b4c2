package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse aggregates the weather provider and the session registry
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Provider ComponentHealthStatus `json:"provider"`
	Sessions ComponentHealthStatus `json:"sessions"`
}
