package apitest

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/agei/internal/domain"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func applyTaskDraft(t *domain.Task, d domain.TaskDraft) {
	if d.Title != nil {
		t.Title = *d.Title
	}
	if d.Description != nil {
		t.Description = *d.Description
	}
	if d.Priority != nil {
		t.Priority = *d.Priority
	}
	if d.Category != nil {
		t.Category = *d.Category
	}
	if d.Due != nil {
		t.Due = *d.Due
	}
	if d.Completed != nil {
		t.Completed = *d.Completed
	}
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	s.mem.mu.Lock()
	tasks := slices.Clone(s.mem.of(userIDFrom(r.Context())).tasks)
	s.mem.mu.Unlock()

	if tasks == nil {
		tasks = []domain.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var d domain.TaskDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := d.Validate(true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mem.mu.Lock()
	task := domain.Task{
		ID:        s.mem.id("tarefas"),
		Priority:  domain.PriorityMedium,
		Category:  domain.CategoryAdministrative,
		CreatedAt: domain.NewTimestamp(s.mem.now().UTC()),
	}
	applyTaskDraft(&task, d)
	data := s.mem.of(userIDFrom(r.Context()))
	data.tasks = append(data.tasks, task)
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var d domain.TaskDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := d.Validate(false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mem.mu.Lock()
	data := s.mem.of(userIDFrom(r.Context()))
	i := indexOfTask(data.tasks, id)
	if i < 0 {
		s.mem.mu.Unlock()
		writeError(w, http.StatusNotFound, "Tarefa não encontrada")
		return
	}
	applyTaskDraft(&data.tasks[i], d)
	task := data.tasks[i]
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	s.mem.mu.Lock()
	data := s.mem.of(userIDFrom(r.Context()))
	i := indexOfTask(data.tasks, id)
	if i >= 0 {
		data.tasks = slices.Delete(data.tasks, i, i+1)
	}
	s.mem.mu.Unlock()

	if i < 0 {
		writeError(w, http.StatusNotFound, "Tarefa não encontrada")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
