package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agei/internal/domain"
)

// LoadDashboard fetches tasks, check-ins and courses concurrently and
// summarises them at now. If any read fails none of the three local
// collections is touched.
func (w *Workspace) LoadDashboard(ctx context.Context, now time.Time) (domain.Dashboard, error) {
	var (
		tasks    []domain.Task
		checkIns []domain.CheckIn
		courses  []domain.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = w.tasks.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		checkIns, err = w.emotional.ListCheckIns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = w.training.ListCourses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("workspace.LoadDashboard: %w", err)
	}

	w.mu.Lock()
	w.taskList = tasks
	w.checkIns = checkIns
	w.courses = courses
	w.mu.Unlock()

	w.log.DebugContext(ctx, "dashboard loaded",
		slog.Int("tasks", len(tasks)),
		slog.Int("checkins", len(checkIns)),
		slog.Int("courses", len(courses)))
	return domain.BuildDashboard(tasks, checkIns, courses, now), nil
}
