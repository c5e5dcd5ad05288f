package training

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/agei/internal/domain"
)

// ListCourses returns the user's courses, modules included.
func (s *Service) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := s.api.Get(ctx, coursesPath, &courses); err != nil {
		return nil, fmt.Errorf("training.ListCourses: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

// CreateCourse sends a new course and returns the stored record.
func (s *Service) CreateCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error) {
	var course domain.Course
	if err := s.api.Post(ctx, coursesPath, draft, &course); err != nil {
		return nil, fmt.Errorf("training.CreateCourse: %w", err)
	}

	s.log.InfoContext(ctx, "course created", slog.Int64("course_id", course.ID))
	return &course, nil
}

// UpdateCourse replaces the fields present in draft.
func (s *Service) UpdateCourse(ctx context.Context, id int64, draft domain.CourseDraft) (*domain.Course, error) {
	var course domain.Course
	if err := s.api.Put(ctx, courseItemPath(id), draft, &course); err != nil {
		return nil, fmt.Errorf("training.UpdateCourse: %w", err)
	}

	s.log.InfoContext(ctx, "course updated", slog.Int64("course_id", id))
	return &course, nil
}

// DeleteCourse removes a course and its modules.
func (s *Service) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, courseItemPath(id)); err != nil {
		return fmt.Errorf("training.DeleteCourse: %w", err)
	}

	s.log.InfoContext(ctx, "course deleted", slog.Int64("course_id", id))
	return nil
}

// GetSuggestions returns the courses the server recommends.
func (s *Service) GetSuggestions(ctx context.Context) ([]domain.Course, error) {
	var suggestions []domain.Course
	if err := s.api.Get(ctx, suggestionsPath, &suggestions); err != nil {
		return nil, fmt.Errorf("training.GetSuggestions: %w", err)
	}
	if suggestions == nil {
		suggestions = []domain.Course{}
	}
	return suggestions, nil
}

func courseItemPath(id int64) string {
	return coursesPath + "/" + strconv.FormatInt(id, 10)
}
