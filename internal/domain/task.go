package domain

import "time"

// Task is an item on the user's to-do list.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Priority    Priority  `json:"prioridade"`
	Category    Category  `json:"categoria"`
	Due         Date      `json:"prazo"`
	Completed   bool      `json:"concluida"`
	CreatedAt   Timestamp `json:"data_criacao"`
}

// IsOverdue reports whether the task is still open and its deadline is
// strictly before now. Tasks without a deadline are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Completed || t.Due.IsZero() {
		return false
	}
	return t.Due.Before(now)
}

// Draft returns a populated draft of the task, as an edit form would
// start from it. A task without a deadline leaves Due nil. A timed
// deadline is sent back as its calendar date.
func (t *Task) Draft() TaskDraft {
	d := TaskDraft{
		Title:       Ptr(t.Title),
		Description: Ptr(t.Description),
		Priority:    Ptr(t.Priority),
		Category:    Ptr(t.Category),
		Completed:   Ptr(t.Completed),
	}
	if !t.Due.IsZero() {
		d.Due = Ptr(t.Due)
	}
	return d
}

// TaskDraft is a task being composed for create or update.
// Nil fields are left out of the request.
type TaskDraft struct {
	Title       *string   `json:"titulo,omitempty"`
	Description *string   `json:"descricao,omitempty"`
	Priority    *Priority `json:"prioridade,omitempty"`
	Category    *Category `json:"categoria,omitempty"`
	Due         *Date     `json:"prazo,omitempty"`
	Completed   *bool     `json:"concluida,omitempty"`
}

// NewTaskDraft returns the defaults a new-task form starts with.
func NewTaskDraft() TaskDraft {
	return TaskDraft{
		Title:       Ptr(""),
		Description: Ptr(""),
		Priority:    Ptr(PriorityMedium),
		Category:    Ptr(CategoryAdministrative),
	}
}

// Validate checks the fields that are set. When creating, a title is required.
func (d TaskDraft) Validate(creating bool) error {
	var errs []FieldError

	if d.Title == nil || *d.Title == "" {
		if creating || d.Title != nil {
			errs = append(errs, FieldError{Field: "titulo", Message: "required"})
		}
	} else if len(*d.Title) > 200 {
		errs = append(errs, FieldError{Field: "titulo", Message: "too long"})
	}
	if d.Priority != nil && !d.Priority.IsValid() {
		errs = append(errs, FieldError{Field: "prioridade", Message: "must be baixa, media or alta"})
	}
	if d.Category != nil && !d.Category.IsValid() {
		errs = append(errs, FieldError{Field: "categoria", Message: "must be administrativa, pedagogica or gestao"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// TaskFilter narrows a task list by status, priority and category.
// Zero values mean "all".
type TaskFilter struct {
	Status   TaskStatus
	Priority Priority
	Category Category
}

// Match reports whether t passes every criterion of the filter.
func (f TaskFilter) Match(t Task) bool {
	switch f.Status {
	case TaskStatusPending:
		if t.Completed {
			return false
		}
	case TaskStatusCompleted:
		if !t.Completed {
			return false
		}
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// FilterTasks returns the tasks matching f, in their original order.
func FilterTasks(tasks []Task, f TaskFilter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// OverdueTasks returns the tasks that are overdue at now.
func OverdueTasks(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0)
	for i := range tasks {
		if tasks[i].IsOverdue(now) {
			out = append(out, tasks[i])
		}
	}
	return out
}
