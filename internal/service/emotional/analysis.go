package emotional

import (
	"context"
	"fmt"

	"github.com/heartmarshall/agei/internal/domain"
)

// GetAnalysis fetches the analysis the server computes over the user's
// check-ins and events. The document is passed through as-is.
func (s *Service) GetAnalysis(ctx context.Context) (domain.Analysis, error) {
	var analysis domain.Analysis
	if err := s.api.Get(ctx, analysisPath, &analysis); err != nil {
		return domain.Analysis{}, fmt.Errorf("emotional.GetAnalysis: %w", err)
	}
	return analysis, nil
}
