package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/homeharbor/homeharbor-cli/cmd/cli/internal/commands"
	"github.com/homeharbor/homeharbor-cli/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Login      commands.LoginCmd      `cmd:"" help:"Log in to the marketplace"`
		Logout     commands.LogoutCmd     `cmd:"" help:"Log out and clear the local session"`
		Register   commands.RegisterCmd   `cmd:"" help:"Create a new account"`
		Whoami     commands.WhoamiCmd     `cmd:"" help:"Show the logged-in user"`
		Session    commands.SessionCmd    `cmd:"" help:"Inspect the local session"`
		Properties commands.PropertiesCmd `cmd:"" help:"Browse and manage property listings"`
		Services   commands.ServicesCmd   `cmd:"" help:"Browse and manage service offers"`
		Bookings   commands.BookingsCmd   `cmd:"" help:"Manage viewing bookings"`
		Users      commands.UsersCmd      `cmd:"" help:"Administer user accounts"`
		Debug      bool                   `help:"Enable debug mode."`
		Version    kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	logger.Setup(cli.Debug)
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
