package domain

// Course is a continuing-education course the user follows.
type Course struct {
	ID          int64        `json:"id"`
	Title       string       `json:"titulo"`
	Description string       `json:"descricao"`
	Mode        DeliveryMode `json:"tipo"`
	Duration    int          `json:"duracao"`
	Level       Level        `json:"nivel"`
	Area        Area         `json:"area"`
	Completed   bool         `json:"concluido"`
	Modules     []Module     `json:"modulos"`
	CreatedAt   Timestamp    `json:"data_criacao"`
}

// Module is a unit of a course. Modules are owned by their course and
// managed by the server.
type Module struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Duration    int    `json:"duracao"`
	Completed   bool   `json:"concluido"`
}

// Progress is the percentage of completed modules, 0 when there are none.
func (c *Course) Progress() float64 {
	if len(c.Modules) == 0 {
		return 0
	}
	done := 0
	for _, m := range c.Modules {
		if m.Completed {
			done++
		}
	}
	return float64(done) / float64(len(c.Modules)) * 100
}

// CourseDraft is a course being composed. It has no modules: those are
// created by the server.
type CourseDraft struct {
	Title       *string       `json:"titulo,omitempty"`
	Description *string       `json:"descricao,omitempty"`
	Mode        *DeliveryMode `json:"tipo,omitempty"`
	Duration    *int          `json:"duracao,omitempty"`
	Level       *Level        `json:"nivel,omitempty"`
	Area        *Area         `json:"area,omitempty"`
	Completed   *bool         `json:"concluido,omitempty"`
}

// NewCourseDraft returns the defaults the new-course form starts with.
func NewCourseDraft() CourseDraft {
	return CourseDraft{
		Title:       Ptr(""),
		Description: Ptr(""),
		Mode:        Ptr(DeliveryOnline),
		Level:       Ptr(LevelIntermediate),
		Area:        Ptr(AreaManagement),
	}
}

// Validate checks the fields that are set. When creating, a title is required.
func (d CourseDraft) Validate(creating bool) error {
	var errs []FieldError

	if d.Title == nil || *d.Title == "" {
		if creating || d.Title != nil {
			errs = append(errs, FieldError{Field: "titulo", Message: "required"})
		}
	}
	if d.Mode != nil && !d.Mode.IsValid() {
		errs = append(errs, FieldError{Field: "tipo", Message: "must be online, presencial or hibrido"})
	}
	if d.Level != nil && !d.Level.IsValid() {
		errs = append(errs, FieldError{Field: "nivel", Message: "must be basico, intermediario or avancado"})
	}
	if d.Area != nil && !d.Area.IsValid() {
		errs = append(errs, FieldError{Field: "area", Message: "must be gestao, pedagogia, tecnologia or lideranca"})
	}
	if d.Duration != nil && *d.Duration < 0 {
		errs = append(errs, FieldError{Field: "duracao", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// CourseProgress pairs a course with its completion percentage.
type CourseProgress struct {
	Course  Course
	Percent float64
}

// InProgressCourses returns the courses not yet marked completed.
func InProgressCourses(courses []Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if !c.Completed {
			out = append(out, c)
		}
	}
	return out
}
