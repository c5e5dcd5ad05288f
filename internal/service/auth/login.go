package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agei/internal/domain"
)

// Login exchanges credentials for a token and the user profile.
// A rejected login surfaces as the gateway's status error.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := s.api.Post(ctx, "/auth/login", creds, &result); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", result.User.ID))
	return &result, nil
}
