package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/agei/internal/domain"
)

// recentLimit is how many check-ins and events `agei emotional` shows.
const recentLimit = 5

func (cli *commandLine) checkIn(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("checkin")
	mood := fs.Int("mood", 3, "mood, 1 to 5")
	energy := fs.Int("energy", 5, "energy, 1 to 10")
	stress := fs.Int("stress", 3, "stress, 1 to 10")
	notes := fs.String("notes", "", "free-text notes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	draft := domain.NewCheckInDraft()
	draft.Mood = mood
	draft.Energy = energy
	draft.Stress = stress
	draft.Notes = notes
	if err := draft.Validate(); err != nil {
		return err
	}

	c, err := cli.app.Workspace.RecordCheckIn(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "recorded check-in %d\n", c.ID)
	return nil
}

func (cli *commandLine) event(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("event")
	kind := fs.String("kind", string(domain.EventPositive), "positivo, negativo or neutro")
	description := fs.String("description", "", "what happened")
	impact := fs.Int("impact", 3, "impact, 1 to 5")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	draft := domain.NewEventDraft()
	draft.Kind = domain.Ptr(domain.EventKind(*kind))
	draft.Description = description
	draft.Impact = impact
	if err := draft.Validate(); err != nil {
		return err
	}

	e, err := cli.app.Workspace.RecordEvent(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "recorded event %d\n", e.ID)
	return nil
}

func (cli *commandLine) emotional(ctx context.Context) error {
	ws := cli.app.Workspace
	if err := ws.RefreshEmotional(ctx); err != nil {
		return err
	}

	printAverages(cli.out, ws.Averages())
	fmt.Fprintln(cli.out, "\nrecent check-ins:")
	printCheckIns(cli.out, domain.RecentCheckIns(ws.CheckIns(), recentLimit))
	fmt.Fprintln(cli.out, "\nrecent events:")
	printEvents(cli.out, domain.RecentEvents(ws.Events(), recentLimit))
	return nil
}

func (cli *commandLine) analysis(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("analysis")
	path := fs.String("path", "", "gjson path to print instead of the whole document")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	a, err := cli.app.Emotional.GetAnalysis(ctx)
	if err != nil {
		return err
	}
	if a.IsEmpty() {
		fmt.Fprintln(cli.out, "no analysis available")
		return nil
	}

	if *path != "" {
		v := a.Get(*path)
		if !v.Exists() {
			return fmt.Errorf("analysis: path %q: %w", *path, domain.ErrNotFound)
		}
		fmt.Fprintln(cli.out, v.String())
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, a.Raw(), "", "  "); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	fmt.Fprintln(cli.out, buf.String())
	return nil
}
