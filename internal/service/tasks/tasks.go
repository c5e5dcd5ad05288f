package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/agei/internal/domain"
)

// List returns every task of the authenticated user, in server order.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.api.Get(ctx, basePath, &tasks); err != nil {
		return nil, fmt.Errorf("tasks.List: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create sends a new task and returns the record the server stored.
func (s *Service) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	var task domain.Task
	if err := s.api.Post(ctx, basePath, draft, &task); err != nil {
		return nil, fmt.Errorf("tasks.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created", slog.Int64("task_id", task.ID))
	return &task, nil
}

// Update replaces the fields present in draft and returns the updated task.
func (s *Service) Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	var task domain.Task
	if err := s.api.Put(ctx, itemPath(id), draft, &task); err != nil {
		return nil, fmt.Errorf("tasks.Update: %w", err)
	}

	s.log.InfoContext(ctx, "task updated", slog.Int64("task_id", id))
	return &task, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, itemPath(id)); err != nil {
		return fmt.Errorf("tasks.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}

func itemPath(id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}
