package entities

import "time"

// Component states reported by the health check.
const (
	HealthOK       = "ok"
	HealthDown     = "down"
	HealthDisabled = "disabled"
)

// ServiceStatus is the state of one backing component.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse is served bare, outside the API envelope, so that load
// balancers can read it without unwrapping.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"upSince"`
	Uptime   string                   `json:"uptime"`
}

// Healthy is true when every component is ok or deliberately disabled.
func (h *HealthCheckResponse) Healthy() bool {
	for _, s := range h.Services {
		if s.Status == HealthDown {
			return false
		}
	}
	return true
}
