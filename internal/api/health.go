package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"flightops360/hangar/internal/models/entities"
)

const healthPingTimeout = 3 * time.Second

// HealthCheckHandler handles GET /healthCheck. It answers 503 while the
// document store is unreachable; optional collaborators report "disabled"
// when they were not configured.
func HealthCheckHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := entities.HealthCheckResponse{
			Services: map[string]entities.ServiceStatus{"store": pingStore(r.Context(), deps)},
			UpSince:  deps.UpSince,
			Uptime:   time.Since(deps.UpSince).Round(time.Second).String(),
		}
		for name, enabled := range deps.Features {
			st := entities.ServiceStatus{Status: entities.HealthOK, Details: "configured"}
			if !enabled {
				st = entities.ServiceStatus{Status: entities.HealthDisabled, Details: "not configured"}
			}
			resp.Services[name] = st
		}

		code := http.StatusOK
		resp.Status = entities.HealthOK
		if !resp.Healthy() {
			resp.Status = entities.HealthDown
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func pingStore(ctx context.Context, deps *Dependencies) entities.ServiceStatus {
	if deps.Store == nil {
		return entities.ServiceStatus{Status: entities.HealthDown, Details: "document store not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := deps.Store.Ping(ctx); err != nil {
		return entities.ServiceStatus{Status: entities.HealthDown, Details: err.Error()}
	}
	return entities.ServiceStatus{Status: entities.HealthOK, Details: "document store reachable"}
}
