package auth

import (
	"context"
	"fmt"
)

// Logout removes the stored credential. The server is not contacted;
// the token simply stops being sent.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.credentials.Clear(); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "credential cleared")
	return nil
}
