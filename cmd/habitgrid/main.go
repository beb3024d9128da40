package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/evanfuller/habitgrid/internal/cli"
	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/errors"
	"github.com/evanfuller/habitgrid/internal/identity"
	"github.com/evanfuller/habitgrid/internal/logger"
	"github.com/evanfuller/habitgrid/internal/storage"
	"github.com/evanfuller/habitgrid/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. Credentials must NOT be embedded in connection strings." default:"~/.config/habitgrid/habitgrid.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitgrid storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive month grid." default:"1"`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Mark    cli.MarkCmd    `cmd:"" help:"Cycle a day's status for a habit."`
	Month   cli.MonthCmd   `cmd:"" help:"Print the month grid."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streaks and completion rates."`
	Account cli.AccountCmd `cmd:"" help:"Manage the active account and tier."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks, targets, and a month grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	config := expandHome(CLI.Config)

	var provider storage.Provider
	if storage.IsPostgres(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: connection strings with embedded credentials are not allowed; use the OS keyring, environment, or .pgpass")
			os.Exit(1)
		}
		provider = storage.NewPostgresStore(config)
	} else {
		provider = storage.NewSQLiteStore(config)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	id := identity.NewManager()
	habitStore := store.New(provider, id)

	appCtx := &cli.Context{
		Store:    habitStore,
		Provider: provider,
		Identity: id,
	}

	// Account and doctor commands manage their own storage needs; init
	// creates the schema itself.
	command := ctx.Command()
	needsData := command != "init" &&
		command != "doctor" &&
		!strings.HasPrefix(command, "account")

	if needsData {
		if err := provider.Load(); err != nil {
			errors.Fatal(err)
		}
		if err := habitStore.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// configDir is where logs live; for postgres profiles it falls back to the
// default sqlite location's directory
func configDir(config string) string {
	if storage.IsPostgres(config) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config", constants.AppName)
		}
		return "."
	}
	return filepath.Dir(config)
}
