package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/agei/internal/domain"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func taskStatus(t domain.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "done"
	case t.IsOverdue(now):
		return "overdue"
	default:
		return "pending"
	}
}

func printTasks(w io.Writer, tasks []domain.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	tw := newTable(w, "ID", "TITLE", "PRIORITY", "CATEGORY", "DUE", "STATUS")
	for _, t := range tasks {
		row(tw, t.ID, t.Title, t.Priority, t.Category, orDash(t.Due.String()), taskStatus(t, now))
	}
	tw.Flush()
}

func printTask(w io.Writer, verb string, t *domain.Task) {
	fmt.Fprintf(w, "%s task %d: %s\n", verb, t.ID, t.Title)
}

func printCourses(w io.Writer, courses []domain.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "no courses")
		return
	}
	tw := newTable(w, "ID", "TITLE", "MODE", "LEVEL", "AREA", "HOURS", "PROGRESS")
	for i := range courses {
		c := &courses[i]
		progress := fmt.Sprintf("%.0f%%", c.Progress())
		if c.Completed {
			progress = "done"
		}
		row(tw, c.ID, c.Title, c.Mode, c.Level, c.Area, c.Duration, progress)
	}
	tw.Flush()
}

func printCheckIns(w io.Writer, checkIns []domain.CheckIn) {
	if len(checkIns) == 0 {
		fmt.Fprintln(w, "no check-ins")
		return
	}
	tw := newTable(w, "ID", "WHEN", "MOOD", "ENERGY", "STRESS", "NOTES")
	for _, c := range checkIns {
		row(tw, c.ID, c.Timestamp.Local().Format("2006-01-02 15:04"), c.Mood, c.Energy, c.Stress, orDash(c.Notes))
	}
	tw.Flush()
}

func printEvents(w io.Writer, events []domain.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "no events")
		return
	}
	tw := newTable(w, "ID", "WHEN", "KIND", "IMPACT", "DESCRIPTION")
	for _, e := range events {
		row(tw, e.ID, e.Timestamp.Local().Format("2006-01-02 15:04"), e.Kind, e.Impact, e.Description)
	}
	tw.Flush()
}

func printAverages(w io.Writer, avg domain.CheckInAverages) {
	fmt.Fprintf(w, "averages over %d check-ins: mood %.1f  energy %.1f  stress %.1f\n",
		avg.Count, avg.Mood, avg.Energy, avg.Stress)
}

func printDashboard(w io.Writer, d domain.Dashboard) {
	fmt.Fprintf(w, "pending tasks:       %d (%d overdue)\n", d.PendingTasks, d.OverdueTasks)
	fmt.Fprintf(w, "average mood:        %.1f over %d check-ins\n", d.AverageMood, d.CheckInCount)
	fmt.Fprintf(w, "courses in progress: %d\n", d.CoursesInProgress)

	if len(d.HighPriorityTasks) > 0 {
		fmt.Fprintln(w, "\nhigh priority:")
		printTasks(w, d.HighPriorityTasks, d.GeneratedAt)
	}
	if len(d.CourseProgress) > 0 {
		fmt.Fprintln(w, "\ncourse progress:")
		tw := newTable(w, "ID", "TITLE", "PROGRESS")
		for _, p := range d.CourseProgress {
			row(tw, p.Course.ID, p.Course.Title, fmt.Sprintf("%.0f%%", p.Percent))
		}
		tw.Flush()
	}
}
