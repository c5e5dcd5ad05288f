// Package training maps continuing-education courses and suggestions onto
// the /formacao endpoints.
package training

import (
	"context"
	"log/slog"
)

const (
	coursesPath     = "/formacao/cursos"
	suggestionsPath = "/formacao/sugestoes"
)

// apiClient defines the gateway calls needed by training service.
type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Service implements course operations.
type Service struct {
	log *slog.Logger
	api apiClient
}

// NewService creates a new training service instance.
func NewService(logger *slog.Logger, api apiClient) *Service {
	return &Service{
		log: logger.With("service", "training"),
		api: api,
	}
}
