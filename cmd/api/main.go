package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "timetracker",
		Usage:   "employee time tracking API",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			createUserCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
