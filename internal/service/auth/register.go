package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agei/internal/domain"
)

// Register creates an account and returns its token and profile.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := s.api.Post(ctx, "/auth/registro", reg, &result); err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", result.User.ID))
	return &result, nil
}
