// Command agei is a terminal client for the AGEI school management API.
//
// Usage:
//
//	agei login -email ana@escola.br
//	agei tasks list -status pendentes
//	agei dashboard
//
// Configuration comes from ./agei.yaml (or CONFIG_PATH) and AGEI_* env vars.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/agei/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, status, err := app.Bootstrap(ctx, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	cli := newCommandLine(a, status, os.Stdout, os.Stderr)
	if err := cli.run(ctx, os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "error: %s\n", describeError(err))
		}
		stop()
		os.Exit(1)
	}
}
