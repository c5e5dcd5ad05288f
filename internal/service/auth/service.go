package auth

import (
	"context"
	"log/slog"
)

// apiClient defines the gateway calls needed by auth service.
type apiClient interface {
	Post(ctx context.Context, path string, body, out any) error
}

// credentialStore defines the local credential operations needed by auth service.
type credentialStore interface {
	Clear() error
}

// Service implements auth operations against the remote API.
type Service struct {
	log         *slog.Logger
	api         apiClient
	credentials credentialStore
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, api apiClient, credentials credentialStore) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		api:         api,
		credentials: credentials,
	}
}
