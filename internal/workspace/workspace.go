// Package workspace keeps the local copies of every resource family in
// step with the remote API. Every change is sent to the server and then
// the affected family is fetched again in full; local copies are never
// patched in place.
package workspace

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/heartmarshall/agei/internal/domain"
)

// taskService defines the task operations needed by the workspace.
type taskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// emotionalService defines the well-being operations needed by the workspace.
type emotionalService interface {
	ListCheckIns(ctx context.Context) ([]domain.CheckIn, error)
	RecordCheckIn(ctx context.Context, draft domain.CheckInDraft) (*domain.CheckIn, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	RecordEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error)
}

// trainingService defines the course operations needed by the workspace.
type trainingService interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	CreateCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id int64, draft domain.CourseDraft) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	GetSuggestions(ctx context.Context) ([]domain.Course, error)
}

// Workspace holds the local collections. Accessors return copies, so
// callers never share memory with the workspace.
type Workspace struct {
	log       *slog.Logger
	tasks     taskService
	emotional emotionalService
	training  trainingService

	mu          sync.RWMutex
	taskList    []domain.Task
	checkIns    []domain.CheckIn
	events      []domain.Event
	courses     []domain.Course
	suggestions []domain.Course
}

// New creates an empty workspace.
func New(logger *slog.Logger, tasks taskService, emotional emotionalService, training trainingService) *Workspace {
	return &Workspace{
		log:         logger.With("component", "workspace"),
		tasks:       tasks,
		emotional:   emotional,
		training:    training,
		taskList:    []domain.Task{},
		checkIns:    []domain.CheckIn{},
		events:      []domain.Event{},
		courses:     []domain.Course{},
		suggestions: []domain.Course{},
	}
}

// Tasks returns the local tasks matching filter, in server order.
func (w *Workspace) Tasks(filter domain.TaskFilter) []domain.Task {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return domain.FilterTasks(w.taskList, filter)
}

// CheckIns returns the local check-ins.
func (w *Workspace) CheckIns() []domain.CheckIn {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.checkIns)
}

// Events returns the local emotional events.
func (w *Workspace) Events() []domain.Event {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.events)
}

// Averages returns the mean scores over the local check-ins.
func (w *Workspace) Averages() domain.CheckInAverages {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return domain.AverageCheckIns(w.checkIns)
}

// Courses returns the local courses.
func (w *Workspace) Courses() []domain.Course {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return cloneCourses(w.courses)
}

// Suggestions returns the local course suggestions.
func (w *Workspace) Suggestions() []domain.Course {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return cloneCourses(w.suggestions)
}

// InProgressCourses returns the local courses not yet completed.
func (w *Workspace) InProgressCourses() []domain.Course {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return cloneCourses(domain.InProgressCourses(w.courses))
}

func cloneCourses(courses []domain.Course) []domain.Course {
	out := make([]domain.Course, len(courses))
	for i, c := range courses {
		c.Modules = slices.Clone(c.Modules)
		out[i] = c
	}
	return out
}
