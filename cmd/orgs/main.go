package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/aussiebroadwan/orgs/internal/orgs/app"
)

var cli struct {
	Version kong.VersionFlag `help:"Print the version and exit."`

	Serve      ServeCmd   `cmd:"" default:"1" help:"Run the HTTP API (default)."`
	Migrate    MigrateCmd `cmd:"" help:"Apply database migrations and exit."`
	VersionCmd VersionCmd `cmd:"" name:"version" help:"Print the build version."`
}

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("orgs"),
		kong.Description("Multi-tenant user and organisation API."),
		kong.UsageOnError(),
		kong.Vars{"version": app.BuildVersion},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	cmd.FatalIfErrorf(cmd.Run())
}
