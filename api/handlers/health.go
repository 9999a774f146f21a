package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"news-summarizer-api/api/dto/responses"
)

// Pinger is anything whose reachability the health check reports
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	version string
	checks  map[string]Pinger
}

// NewHealthHandler creates a health handler. Checks are optional.
func NewHealthHandler(version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Status int
	Body   responses.HealthResponse
}

// Health reports "ok", or "degraded" with 503 when a dependency is unreachable
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{
		Status: http.StatusOK,
		Body: responses.HealthResponse{
			Status:    "ok",
			Version:   h.version,
			Timestamp: time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			out.Status = http.StatusServiceUnavailable
			out.Body.Status = "degraded"
			break
		}
	}

	return out, nil
}
