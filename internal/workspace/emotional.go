package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agei/internal/domain"
)

// RefreshEmotional fetches check-ins and events together. Both local
// collections are replaced only when both reads succeed.
func (w *Workspace) RefreshEmotional(ctx context.Context) error {
	var (
		checkIns []domain.CheckIn
		events   []domain.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		checkIns, err = w.emotional.ListCheckIns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = w.emotional.ListEvents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("workspace.RefreshEmotional: %w", err)
	}

	w.mu.Lock()
	w.checkIns = checkIns
	w.events = events
	w.mu.Unlock()

	w.log.DebugContext(ctx, "emotional refreshed",
		slog.Int("checkins", len(checkIns)),
		slog.Int("events", len(events)))
	return nil
}

// RecordCheckIn records a check-in and refetches the emotional family.
func (w *Workspace) RecordCheckIn(ctx context.Context, draft domain.CheckInDraft) (*domain.CheckIn, error) {
	checkIn, err := w.emotional.RecordCheckIn(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.RecordCheckIn: %w", err)
	}
	if err := w.RefreshEmotional(ctx); err != nil {
		return checkIn, fmt.Errorf("workspace.RecordCheckIn: %w", err)
	}
	return checkIn, nil
}

// RecordEvent records an event and refetches the emotional family.
func (w *Workspace) RecordEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	event, err := w.emotional.RecordEvent(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.RecordEvent: %w", err)
	}
	if err := w.RefreshEmotional(ctx); err != nil {
		return event, fmt.Errorf("workspace.RecordEvent: %w", err)
	}
	return event, nil
}
