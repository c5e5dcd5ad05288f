package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/heartmarshall/agei/internal/domain"
)

func (cli *commandLine) tasks(ctx context.Context, args []string) error {
	sub, rest, err := cli.subcommand(args)
	if err != nil {
		return err
	}
	switch sub {
	case "list":
		return cli.listTasks(ctx, rest)
	case "add":
		return cli.addTask(ctx, rest)
	case "edit":
		return cli.editTask(ctx, rest)
	case "toggle":
		return cli.toggleTask(ctx, rest)
	case "rm":
		return cli.deleteTask(ctx, rest)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listTasks(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("tasks list")
	status := fs.String("status", string(domain.TaskStatusAll), "todas, pendentes or concluidas")
	priority := fs.String("priority", "", "baixa, media or alta")
	category := fs.String("category", "", "administrativa, pedagogica or gestao")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	filter := domain.TaskFilter{
		Status:   domain.TaskStatus(*status),
		Priority: domain.Priority(*priority),
		Category: domain.Category(*category),
	}
	if err := validateFilter(filter); err != nil {
		return err
	}

	if err := cli.app.Workspace.RefreshTasks(ctx); err != nil {
		return err
	}
	printTasks(cli.out, cli.app.Workspace.Tasks(filter), time.Now())
	return nil
}

func validateFilter(f domain.TaskFilter) error {
	var errs []domain.FieldError
	if !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be todas, pendentes or concluidas"})
	}
	if f.Priority != "" && !f.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be baixa, media or alta"})
	}
	if f.Category != "" && !f.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be administrativa, pedagogica or gestao"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// taskFlags binds the editable task fields to fs.
type taskFlags struct {
	title, description, priority, category, due *string
	completed                                   *bool
}

func bindTaskFlags(fs *flag.FlagSet, withCompleted bool) taskFlags {
	tf := taskFlags{
		title:       fs.String("title", "", "task title"),
		description: fs.String("description", "", "task description"),
		priority:    fs.String("priority", string(domain.PriorityMedium), "baixa, media or alta"),
		category:    fs.String("category", string(domain.CategoryAdministrative), "administrativa, pedagogica or gestao"),
		due:         fs.String("due", "", "deadline as YYYY-MM-DD"),
	}
	if withCompleted {
		tf.completed = fs.Bool("completed", false, "mark as completed")
	}
	return tf
}

// apply copies the given flags onto d. When onlySet is true, flags left
// at their defaults are not copied.
func (tf taskFlags) apply(d *domain.TaskDraft, set map[string]bool, onlySet bool) error {
	use := func(name string) bool { return !onlySet || set[name] }

	if use("title") {
		d.Title = domain.Ptr(*tf.title)
	}
	if use("description") {
		d.Description = domain.Ptr(*tf.description)
	}
	if use("priority") {
		d.Priority = domain.Ptr(domain.Priority(*tf.priority))
	}
	if use("category") {
		d.Category = domain.Ptr(domain.Category(*tf.category))
	}
	if set["due"] {
		due, err := domain.ParseDate(*tf.due)
		if err != nil {
			return domain.NewValidationError("prazo", err.Error())
		}
		d.Due = &due
	}
	if tf.completed != nil && set["completed"] {
		d.Completed = domain.Ptr(*tf.completed)
	}
	return nil
}

func (cli *commandLine) addTask(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("tasks add")
	tf := bindTaskFlags(fs, false)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	draft := domain.NewTaskDraft()
	if err := tf.apply(&draft, setFlags(fs), false); err != nil {
		return err
	}
	if err := draft.Validate(true); err != nil {
		return err
	}

	task, err := cli.app.Workspace.CreateTask(ctx, draft)
	if err != nil {
		return err
	}
	printTask(cli.out, "created", task)
	return nil
}

func (cli *commandLine) editTask(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("tasks edit")
	id := fs.Int64("id", 0, "task id")
	tf := bindTaskFlags(fs, true)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		fs.Usage()
		return errHelp
	}

	var draft domain.TaskDraft
	if err := tf.apply(&draft, setFlags(fs), true); err != nil {
		return err
	}
	if err := draft.Validate(false); err != nil {
		return err
	}

	task, err := cli.app.Workspace.UpdateTask(ctx, *id, draft)
	if err != nil {
		return err
	}
	printTask(cli.out, "updated", task)
	return nil
}

func (cli *commandLine) toggleTask(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("tasks toggle")
	id := fs.Int64("id", 0, "task id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		fs.Usage()
		return errHelp
	}

	// Toggling works from the local copy, so load it first.
	if err := cli.app.Workspace.RefreshTasks(ctx); err != nil {
		return err
	}
	task, err := cli.app.Workspace.ToggleTask(ctx, *id)
	if err != nil {
		return err
	}
	verb := "reopened"
	if task.Completed {
		verb = "completed"
	}
	printTask(cli.out, verb, task)
	return nil
}

func (cli *commandLine) deleteTask(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("tasks rm")
	id := fs.Int64("id", 0, "task id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		fs.Usage()
		return errHelp
	}

	if err := cli.app.Workspace.DeleteTask(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "deleted task %d\n", *id)
	return nil
}
