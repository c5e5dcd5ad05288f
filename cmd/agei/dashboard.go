package main

import (
	"context"
	"time"
)

func (cli *commandLine) dashboard(ctx context.Context) error {
	d, err := cli.app.Workspace.LoadDashboard(ctx, time.Now())
	if err != nil {
		return err
	}
	printDashboard(cli.out, d)
	return nil
}
