package domain

import "time"

// DashboardListLimit caps the highlight lists shown on the dashboard.
const DashboardListLimit = 5

// Dashboard summarises tasks, well-being and training at one instant.
type Dashboard struct {
	GeneratedAt       time.Time
	PendingTasks      int
	OverdueTasks      int
	HighPriorityTasks []Task
	AverageMood       float64
	CheckInCount      int
	CoursesInProgress int
	CourseProgress    []CourseProgress
}

// BuildDashboard derives the dashboard from full collections.
// Overdue is evaluated against now; nothing is cached.
func BuildDashboard(tasks []Task, checkIns []CheckIn, courses []Course, now time.Time) Dashboard {
	pending := FilterTasks(tasks, TaskFilter{Status: TaskStatusPending})
	high := FilterTasks(tasks, TaskFilter{Priority: PriorityHigh})
	inProgress := InProgressCourses(courses)

	shown := Recent(inProgress, DashboardListLimit)
	progress := make([]CourseProgress, 0, len(shown))
	for i := range shown {
		progress = append(progress, CourseProgress{Course: shown[i], Percent: shown[i].Progress()})
	}

	return Dashboard{
		GeneratedAt:       now,
		PendingTasks:      len(pending),
		OverdueTasks:      len(OverdueTasks(pending, now)),
		HighPriorityTasks: Recent(high, DashboardListLimit),
		AverageMood:       AverageMood(checkIns),
		CheckInCount:      len(checkIns),
		CoursesInProgress: len(inProgress),
		CourseProgress:    progress,
	}
}
