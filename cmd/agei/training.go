package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/heartmarshall/agei/internal/domain"
)

func (cli *commandLine) courses(ctx context.Context, args []string) error {
	sub, rest, err := cli.subcommand(args)
	if err != nil {
		return err
	}
	switch sub {
	case "list":
		return cli.listCourses(ctx, rest)
	case "add":
		return cli.addCourse(ctx, rest)
	case "edit":
		return cli.editCourse(ctx, rest)
	case "rm":
		return cli.deleteCourse(ctx, rest)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listCourses(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("courses list")
	inProgress := fs.Bool("in-progress", false, "only courses not yet completed")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := cli.app.Workspace.RefreshTraining(ctx); err != nil {
		return err
	}
	courses := cli.app.Workspace.Courses()
	if *inProgress {
		courses = cli.app.Workspace.InProgressCourses()
	}
	printCourses(cli.out, courses)
	return nil
}

type courseFlags struct {
	title, description, mode, level, area *string
	duration                              *int
	completed                             *bool
}

func bindCourseFlags(fs *flag.FlagSet, withCompleted bool) courseFlags {
	cf := courseFlags{
		title:       fs.String("title", "", "course title"),
		description: fs.String("description", "", "course description"),
		mode:        fs.String("mode", string(domain.DeliveryOnline), "online, presencial or hibrido"),
		level:       fs.String("level", string(domain.LevelIntermediate), "basico, intermediario or avancado"),
		area:        fs.String("area", string(domain.AreaManagement), "gestao, pedagogia, tecnologia or lideranca"),
		duration:    fs.Int("duration", 0, "length in hours"),
	}
	if withCompleted {
		cf.completed = fs.Bool("completed", false, "mark as completed")
	}
	return cf
}

func (cf courseFlags) apply(d *domain.CourseDraft, set map[string]bool, onlySet bool) {
	use := func(name string) bool { return !onlySet || set[name] }

	if use("title") {
		d.Title = domain.Ptr(*cf.title)
	}
	if use("description") {
		d.Description = domain.Ptr(*cf.description)
	}
	if use("mode") {
		d.Mode = domain.Ptr(domain.DeliveryMode(*cf.mode))
	}
	if use("level") {
		d.Level = domain.Ptr(domain.Level(*cf.level))
	}
	if use("area") {
		d.Area = domain.Ptr(domain.Area(*cf.area))
	}
	if set["duration"] {
		d.Duration = domain.Ptr(*cf.duration)
	}
	if cf.completed != nil && set["completed"] {
		d.Completed = domain.Ptr(*cf.completed)
	}
}

func (cli *commandLine) addCourse(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("courses add")
	cf := bindCourseFlags(fs, false)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	draft := domain.NewCourseDraft()
	cf.apply(&draft, setFlags(fs), false)
	if err := draft.Validate(true); err != nil {
		return err
	}

	c, err := cli.app.Workspace.CreateCourse(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "created course %d: %s\n", c.ID, c.Title)
	return nil
}

func (cli *commandLine) editCourse(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("courses edit")
	id := fs.Int64("id", 0, "course id")
	cf := bindCourseFlags(fs, true)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		fs.Usage()
		return errHelp
	}

	var draft domain.CourseDraft
	cf.apply(&draft, setFlags(fs), true)
	if err := draft.Validate(false); err != nil {
		return err
	}

	c, err := cli.app.Workspace.UpdateCourse(ctx, *id, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "updated course %d: %s\n", c.ID, c.Title)
	return nil
}

func (cli *commandLine) deleteCourse(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("courses rm")
	id := fs.Int64("id", 0, "course id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *id <= 0 {
		fs.Usage()
		return errHelp
	}

	if err := cli.app.Workspace.DeleteCourse(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "deleted course %d\n", *id)
	return nil
}

func (cli *commandLine) suggestions(ctx context.Context) error {
	if err := cli.app.Workspace.RefreshTraining(ctx); err != nil {
		return err
	}
	printCourses(cli.out, cli.app.Workspace.Suggestions())
	return nil
}
