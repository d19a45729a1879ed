package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cmlabs-hris/attendance-insights/internal/app"
	"github.com/cmlabs-hris/attendance-insights/internal/cli"
	"github.com/cmlabs-hris/attendance-insights/internal/config"
)

var CLI struct {
	Version kong.VersionFlag
	Verbose bool `help:"Log engine diagnostics to stderr." short:"v"`

	Process  cli.ProcessCmd  `cmd:"" help:"Process an attendance workbook."`
	Schedule cli.ScheduleCmd `cmd:"" help:"Show the resolved schedule for an employee."`
	Column   cli.ColumnCmd   `cmd:"" help:"Convert column letters to 0-based indices."`
	Token    cli.TokenCmd    `cmd:"" help:"Mint an API access token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("attendance"),
		kong.Description("Attendance rules engine for monthly time-clock workbooks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelError
	if CLI.Verbose {
		level = app.ParseLevel(cfg.App.LogLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	services, err := app.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Out:       os.Stdout,
		Logger:    logger,
		Resolver:  services.Resolver,
		Reports:   services.Reports,
		ExportDir: cfg.Storage.ExportDir,
		JWT:       services.JWT,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
