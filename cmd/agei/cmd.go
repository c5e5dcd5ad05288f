package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/heartmarshall/agei/internal/app"
	"github.com/heartmarshall/agei/internal/domain"
	"github.com/heartmarshall/agei/internal/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotSignedIn = errors.New("not signed in, run `agei login` first")
)

type commandLine struct {
	app     *app.App
	restore session.RestoreStatus
	out     io.Writer
	errOut  io.Writer
}

func newCommandLine(a *app.App, restore session.RestoreStatus, out, errOut io.Writer) *commandLine {
	return &commandLine{app: a, restore: restore, out: out, errOut: errOut}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.errOut, `Usage: agei <command> [flags]

Session:
  login -email EMAIL [-password P]        sign in (password prompted if omitted)
  register -name -email -role -institution
  logout                                  forget the stored credential
  status                                  show whether a credential is stored

Tasks:
  tasks list [-status -priority -category]
  tasks add -title [-description -priority -category -due]
  tasks edit -id [-title -description -priority -category -due -completed]
  tasks toggle -id
  tasks rm -id

Emotional:
  checkin -mood -energy -stress [-notes]
  event -kind -description -impact
  emotional                               recent check-ins, events and averages
  analysis [-path]                        server analysis, or one gjson path of it

Training:
  courses list
  courses add -title [-description -mode -duration -level -area]
  courses edit -id [...]
  courses rm -id
  suggestions

  dashboard
  version`)
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "login":
		return cli.login(ctx, rest)
	case "register":
		return cli.register(ctx, rest)
	case "logout":
		return cli.logout(ctx)
	case "status":
		return cli.status()
	case "version":
		fmt.Fprintln(cli.out, app.BuildVersion())
		return nil
	case "help", "-h", "-help", "--help":
		cli.printUsage()
		return errHelp
	}

	handler, ok := cli.sessionCommands()[cmd]
	if !ok {
		cli.printUsage()
		return errHelp
	}
	if !cli.app.Session.HasStoredCredential() {
		return errNotSignedIn
	}
	return handler(ctx, rest)
}

// sessionCommands are the commands that talk to authenticated endpoints.
func (cli *commandLine) sessionCommands() map[string]func(context.Context, []string) error {
	noArgs := func(fn func(context.Context) error) func(context.Context, []string) error {
		return func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				cli.printUsage()
				return errHelp
			}
			return fn(ctx)
		}
	}
	return map[string]func(context.Context, []string) error{
		"tasks":       cli.tasks,
		"checkin":     cli.checkIn,
		"event":       cli.event,
		"emotional":   noArgs(cli.emotional),
		"analysis":    cli.analysis,
		"courses":     cli.courses,
		"suggestions": noArgs(cli.suggestions),
		"dashboard":   noArgs(cli.dashboard),
	}
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.errOut)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errHelp
	}
	return nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// subcommand splits "tasks list -x" into "list" and its flags.
func (cli *commandLine) subcommand(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		cli.printUsage()
		return "", nil, errHelp
	}
	return args[0], args[1:], nil
}

// password returns the -password flag, then AGEI_PASSWORD, then a prompt.
func (cli *commandLine) password(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("AGEI_PASSWORD"); env != "" {
		return env, nil
	}
	fmt.Fprint(cli.errOut, "Password: ")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pwd), nil
}

// describeError renders err for the terminal, listing every field of a
// validation failure.
func describeError(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 1 {
		parts := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return "invalid input: " + strings.Join(parts, "; ")
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return err.Error() + " (run `agei login` again)"
	}
	return err.Error()
}
