package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"sprintboard/internal/board"
	"sprintboard/internal/config"
	"sprintboard/internal/logging"
	"sprintboard/internal/storage/sqlite"
)

type globalFlags struct {
	configPath string
	dbPath     string
	logLevel   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "sprintboard",
		Short:         "Backlogs, sprints and the board between them",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&flags.dbPath, "db", "", "Path to the sqlite database file (\":memory:\" for a throwaway board)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Print results as JSON")

	cmd.AddCommand(
		newServeCmd(flags),
		newBacklogCmd(flags),
		newSprintCmd(flags),
		newExportCmd(flags),
	)
	return cmd
}

// app bundles everything a command needs to reach the board.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	logClose io.Closer
	store    *sqlite.Store
	board    *board.Board
}

func openApp(ctx context.Context, flags *globalFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	logger, logClose, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.DBPath, logger)
	if err != nil {
		_ = logClose.Close()
		return nil, err
	}

	var opts []board.Option
	if !cfg.Seed {
		opts = append(opts, board.WithoutSeed())
	}
	b, err := board.Open(ctx, store, logger, opts...)
	if err != nil {
		_ = store.Close()
		_ = logClose.Close()
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, logClose: logClose, store: store, board: b}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("close store", "error", err)
	}
	_ = a.logClose.Close()
}

// withApp opens the board for the duration of fn.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(*app) error) error {
	a, err := openApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
