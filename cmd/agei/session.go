package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/agei/internal/domain"
)

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("login")
	email := fs.String("email", "", "account email")
	pwdFlag := fs.String("password", "", "password (defaults to AGEI_PASSWORD, then a prompt)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *email == "" {
		fs.Usage()
		return errHelp
	}

	pwd, err := cli.password(*pwdFlag)
	if err != nil {
		return err
	}
	creds := domain.Credentials{Email: strings.TrimSpace(*email), Password: pwd}
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := cli.app.Session.Login(ctx, creds); err != nil {
		return err
	}

	u, _ := cli.app.Session.User()
	fmt.Fprintf(cli.out, "signed in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	fs := cli.newFlagSet("register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	role := fs.String("role", "", "job title at the school")
	institution := fs.String("institution", "", "school name")
	pwdFlag := fs.String("password", "", "password (defaults to AGEI_PASSWORD, then a prompt)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	reg := domain.Registration{
		Name:        strings.TrimSpace(*name),
		Email:       strings.TrimSpace(*email),
		Role:        strings.TrimSpace(*role),
		Institution: strings.TrimSpace(*institution),
	}
	if reg.Name == "" || reg.Email == "" {
		fs.Usage()
		return errHelp
	}
	pwd, err := cli.password(*pwdFlag)
	if err != nil {
		return err
	}
	reg.Password = pwd
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := cli.app.Session.Register(ctx, reg); err != nil {
		return err
	}

	u, _ := cli.app.Session.User()
	fmt.Fprintf(cli.out, "registered and signed in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	cli.app.Session.Logout(ctx)
	fmt.Fprintln(cli.out, "signed out")
	return nil
}

func (cli *commandLine) status() error {
	fmt.Fprintf(cli.out, "api:     %s\n", cli.app.Client.BaseURL())
	if cli.app.Session.HasStoredCredential() {
		fmt.Fprintln(cli.out, "session: credential stored (not verified until the next request)")
	} else {
		fmt.Fprintln(cli.out, "session: signed out")
	}
	return nil
}
