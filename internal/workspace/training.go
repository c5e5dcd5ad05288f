package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agei/internal/domain"
)

// RefreshTraining fetches courses and suggestions together. Both local
// collections are replaced only when both reads succeed.
func (w *Workspace) RefreshTraining(ctx context.Context) error {
	var courses, suggestions []domain.Course

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = w.training.ListCourses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		suggestions, err = w.training.GetSuggestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("workspace.RefreshTraining: %w", err)
	}

	w.mu.Lock()
	w.courses = courses
	w.suggestions = suggestions
	w.mu.Unlock()

	w.log.DebugContext(ctx, "training refreshed",
		slog.Int("courses", len(courses)),
		slog.Int("suggestions", len(suggestions)))
	return nil
}

// CreateCourse creates a course and refetches the training family.
func (w *Workspace) CreateCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error) {
	course, err := w.training.CreateCourse(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.CreateCourse: %w", err)
	}
	if err := w.RefreshTraining(ctx); err != nil {
		return course, fmt.Errorf("workspace.CreateCourse: %w", err)
	}
	return course, nil
}

// UpdateCourse updates a course and refetches the training family.
func (w *Workspace) UpdateCourse(ctx context.Context, id int64, draft domain.CourseDraft) (*domain.Course, error) {
	course, err := w.training.UpdateCourse(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.UpdateCourse: %w", err)
	}
	if err := w.RefreshTraining(ctx); err != nil {
		return course, fmt.Errorf("workspace.UpdateCourse: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course and refetches the training family.
func (w *Workspace) DeleteCourse(ctx context.Context, id int64) error {
	if err := w.training.DeleteCourse(ctx, id); err != nil {
		return fmt.Errorf("workspace.DeleteCourse: %w", err)
	}
	if err := w.RefreshTraining(ctx); err != nil {
		return fmt.Errorf("workspace.DeleteCourse: %w", err)
	}
	return nil
}
