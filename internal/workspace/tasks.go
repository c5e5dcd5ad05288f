package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agei/internal/domain"
)

// RefreshTasks replaces the local tasks with the server's list.
// On failure the local tasks are left as they were.
func (w *Workspace) RefreshTasks(ctx context.Context) error {
	tasks, err := w.tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("workspace.RefreshTasks: %w", err)
	}

	w.mu.Lock()
	w.taskList = tasks
	w.mu.Unlock()

	w.log.DebugContext(ctx, "tasks refreshed", slog.Int("count", len(tasks)))
	return nil
}

// CreateTask creates a task and refetches the list. When the create
// succeeds but the refetch fails, the created task is returned together
// with the error.
func (w *Workspace) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	task, err := w.tasks.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.CreateTask: %w", err)
	}
	if err := w.RefreshTasks(ctx); err != nil {
		return task, fmt.Errorf("workspace.CreateTask: %w", err)
	}
	return task, nil
}

// UpdateTask updates a task and refetches the list.
func (w *Workspace) UpdateTask(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	task, err := w.tasks.Update(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("workspace.UpdateTask: %w", err)
	}
	if err := w.RefreshTasks(ctx); err != nil {
		return task, fmt.Errorf("workspace.UpdateTask: %w", err)
	}
	return task, nil
}

// ToggleTask flips the completed flag of a locally known task. The whole
// task is sent back, not only the flag.
func (w *Workspace) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	w.mu.RLock()
	var (
		current domain.Task
		found   bool
	)
	for _, t := range w.taskList {
		if t.ID == id {
			current, found = t, true
			break
		}
	}
	w.mu.RUnlock()

	if !found {
		return nil, fmt.Errorf("workspace.ToggleTask: task %d: %w", id, domain.ErrNotFound)
	}

	draft := current.Draft()
	draft.Completed = domain.Ptr(!current.Completed)
	return w.UpdateTask(ctx, id, draft)
}

// DeleteTask deletes a task and refetches the list.
func (w *Workspace) DeleteTask(ctx context.Context, id int64) error {
	if err := w.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("workspace.DeleteTask: %w", err)
	}
	if err := w.RefreshTasks(ctx); err != nil {
		return fmt.Errorf("workspace.DeleteTask: %w", err)
	}
	return nil
}
