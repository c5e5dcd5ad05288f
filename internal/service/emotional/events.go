package emotional

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agei/internal/domain"
)

// ListEvents returns the user's emotional events in server order.
func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := s.api.Get(ctx, eventsPath, &events); err != nil {
		return nil, fmt.Errorf("emotional.ListEvents: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

// RecordEvent appends an event and returns the stored record.
func (s *Service) RecordEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	var event domain.Event
	if err := s.api.Post(ctx, eventsPath, draft, &event); err != nil {
		return nil, fmt.Errorf("emotional.RecordEvent: %w", err)
	}

	s.log.InfoContext(ctx, "event recorded",
		slog.Int64("event_id", event.ID),
		slog.String("kind", event.Kind.String()))
	return &event, nil
}
