// Package tasks maps task operations onto the /tarefas endpoints.
package tasks

import (
	"context"
	"log/slog"
)

const basePath = "/tarefas"

// apiClient defines the gateway calls needed by tasks service.
type apiClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Service implements task operations.
type Service struct {
	log *slog.Logger
	api apiClient
}

// NewService creates a new tasks service instance.
func NewService(logger *slog.Logger, api apiClient) *Service {
	return &Service{
		log: logger.With("service", "tasks"),
		api: api,
	}
}
