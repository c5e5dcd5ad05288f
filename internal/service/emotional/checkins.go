package emotional

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agei/internal/domain"
)

// ListCheckIns returns the user's check-ins in server order.
func (s *Service) ListCheckIns(ctx context.Context) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	if err := s.api.Get(ctx, checkInsPath, &checkIns); err != nil {
		return nil, fmt.Errorf("emotional.ListCheckIns: %w", err)
	}
	if checkIns == nil {
		checkIns = []domain.CheckIn{}
	}
	return checkIns, nil
}

// RecordCheckIn appends a check-in and returns the stored record.
func (s *Service) RecordCheckIn(ctx context.Context, draft domain.CheckInDraft) (*domain.CheckIn, error) {
	var checkIn domain.CheckIn
	if err := s.api.Post(ctx, checkInsPath, draft, &checkIn); err != nil {
		return nil, fmt.Errorf("emotional.RecordCheckIn: %w", err)
	}

	s.log.InfoContext(ctx, "check-in recorded", slog.Int64("checkin_id", checkIn.ID))
	return &checkIn, nil
}
