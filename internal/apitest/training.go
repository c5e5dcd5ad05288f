package apitest

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/heartmarshall/agei/internal/domain"
)

func defaultSuggestions() []domain.Course {
	return []domain.Course{
		{ID: 901, Title: "Gestão democrática na escola", Mode: domain.DeliveryOnline, Duration: 40, Level: domain.LevelBasic, Area: domain.AreaManagement, Modules: []domain.Module{}},
		{ID: 902, Title: "Avaliação formativa", Mode: domain.DeliveryHybrid, Duration: 30, Level: domain.LevelIntermediate, Area: domain.AreaPedagogy, Modules: []domain.Module{}},
		{ID: 903, Title: "Tecnologias digitais em sala", Mode: domain.DeliveryOnline, Duration: 20, Level: domain.LevelBasic, Area: domain.AreaTechnology, Modules: []domain.Module{}},
		{ID: 904, Title: "Liderança de equipes escolares", Mode: domain.DeliveryInPerson, Duration: 24, Level: domain.LevelAdvanced, Area: domain.AreaLeadership, Modules: []domain.Module{}},
	}
}

func applyCourseDraft(c *domain.Course, d domain.CourseDraft) {
	if d.Title != nil {
		c.Title = *d.Title
	}
	if d.Description != nil {
		c.Description = *d.Description
	}
	if d.Mode != nil {
		c.Mode = *d.Mode
	}
	if d.Duration != nil {
		c.Duration = *d.Duration
	}
	if d.Level != nil {
		c.Level = *d.Level
	}
	if d.Area != nil {
		c.Area = *d.Area
	}
	if d.Completed != nil {
		c.Completed = *d.Completed
	}
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	s.mem.mu.Lock()
	courses := cloneCourses(s.mem.of(userIDFrom(r.Context())).courses)
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var d domain.CourseDraft
	if err := decodeJSON(r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := d.Validate(true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mem.mu.Lock()
	c := domain.Course{
		ID:        s.mem.id("cursos"),
		Mode:      domain.DeliveryOnline,
		Level:     domain.LevelIntermediate,
		Area:      domain.AreaManagement,
		Modules:   []domain.Module{},
		CreatedAt: domain.NewTimestamp(s.mem.now().UTC()),
	}
	applyCourseDraft(&c, d)
	data := s.mem.of(userIDFrom(r.Context()))
	data.courses = append(data.courses, c)
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}
	var d domain.CourseDraft
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
	i := indexOfCourse(data.courses, id)
	if i < 0 {
		s.mem.mu.Unlock()
		writeError(w, http.StatusNotFound, "Curso não encontrado")
		return
	}
	applyCourseDraft(&data.courses[i], d)
	c := cloneCourses(data.courses[i : i+1])[0]
	s.mem.mu.Unlock()

	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	s.mem.mu.Lock()
	data := s.mem.of(userIDFrom(r.Context()))
	i := indexOfCourse(data.courses, id)
	if i >= 0 {
		data.courses = slices.Delete(data.courses, i, i+1)
	}
	s.mem.mu.Unlock()

	if i < 0 {
		writeError(w, http.StatusNotFound, "Curso não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cloneCourses(s.suggestions))
}

// SetModules replaces the modules of a course owned by userID. Module
// ids are assigned by the server.
func (s *Server) SetModules(userID, courseID int64, modules []domain.Module) error {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	data := s.mem.of(userID)
	i := indexOfCourse(data.courses, courseID)
	if i < 0 {
		return fmt.Errorf("course %d of user %d: %w", courseID, userID, domain.ErrNotFound)
	}
	out := make([]domain.Module, len(modules))
	for j, m := range modules {
		m.ID = s.mem.id("modulos")
		out[j] = m
	}
	data.courses[i].Modules = out
	return nil
}

func cloneCourses(courses []domain.Course) []domain.Course {
	out := make([]domain.Course, len(courses))
	for i, c := range courses {
		c.Modules = slices.Clone(c.Modules)
		if c.Modules == nil {
			c.Modules = []domain.Module{}
		}
		out[i] = c
	}
	return out
}
