package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wspjoy2011/sql-repository-example/cmd/usersctl/app"
)

var version = "dev"

// CLI is the root command configuration.
type CLI struct {
	Config   string           `kong:"short='c',default='.',help='Directory containing the app.env config file.'"`
	DB       string           `kong:"help='SQLite database file path (overrides DB_PATH).'"`
	LogLevel string           `kong:"short='l',help='Log level: debug, info, warn, error (overrides LOG_LEVEL).'"`
	Version  kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("usersctl"),
		kong.Description("Interactive user management backed by a relational store."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	application, err := app.New(app.Options{
		ConfigPath: cli.Config,
		DBPath:     cli.DB,
		LogLevel:   cli.LogLevel,
	})
	if err != nil {
		return err
	}

	return application.Run(context.Background())
}
