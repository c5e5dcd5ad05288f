// Package emotional maps well-being check-ins, events and the server-side
// analysis onto the /emocional endpoints.
package emotional

import (
	"context"
	"log/slog"
)

const (
	checkInsPath = "/emocional/check-ins"
	eventsPath   = "/emocional/eventos"
	analysisPath = "/emocional/analise"
)

// apiClient defines the gateway calls needed by emotional service.
type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Service implements emotional well-being operations.
type Service struct {
	log *slog.Logger
	api apiClient
}

// NewService creates a new emotional service instance.
func NewService(logger *slog.Logger, api apiClient) *Service {
	return &Service{
		log: logger.With("service", "emotional"),
		api: api,
	}
}
