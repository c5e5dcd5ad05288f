package domain

// Enum values are the literal strings the remote API sends and accepts.

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Category groups tasks by the kind of school work they belong to.
type Category string

const (
	CategoryAdministrative Category = "administrativa"
	CategoryPedagogical    Category = "pedagogica"
	CategoryManagement     Category = "gestao"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryAdministrative, CategoryPedagogical, CategoryManagement:
		return true
	}
	return false
}

// EventKind tells whether an emotional event was positive, negative or neutral.
type EventKind string

const (
	EventPositive EventKind = "positivo"
	EventNegative EventKind = "negativo"
	EventNeutral  EventKind = "neutro"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventPositive, EventNegative, EventNeutral:
		return true
	}
	return false
}

// DeliveryMode is how a course is taught.
type DeliveryMode string

const (
	DeliveryOnline   DeliveryMode = "online"
	DeliveryInPerson DeliveryMode = "presencial"
	DeliveryHybrid   DeliveryMode = "hibrido"
)

func (m DeliveryMode) String() string { return string(m) }

func (m DeliveryMode) IsValid() bool {
	switch m {
	case DeliveryOnline, DeliveryInPerson, DeliveryHybrid:
		return true
	}
	return false
}

// Level is the difficulty of a course.
type Level string

const (
	LevelBasic        Level = "basico"
	LevelIntermediate Level = "intermediario"
	LevelAdvanced     Level = "avancado"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Area is the subject area of a course.
type Area string

const (
	AreaManagement Area = "gestao"
	AreaPedagogy   Area = "pedagogia"
	AreaTechnology Area = "tecnologia"
	AreaLeadership Area = "lideranca"
)

func (a Area) String() string { return string(a) }

func (a Area) IsValid() bool {
	switch a {
	case AreaManagement, AreaPedagogy, AreaTechnology, AreaLeadership:
		return true
	}
	return false
}

// TaskStatus selects tasks by completion in a TaskFilter.
type TaskStatus string

const (
	TaskStatusAll       TaskStatus = "todas"
	TaskStatusPending   TaskStatus = "pendentes"
	TaskStatusCompleted TaskStatus = "concluidas"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusAll, TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}
