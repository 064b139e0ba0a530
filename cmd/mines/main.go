package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/solver"
)

// Globals is bound into every subcommand's Run.
type Globals struct {
	Env     *config.Env
	Logger  *slog.Logger
	Presets []config.Preset
}

type CLI struct {
	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play in the terminal"`
	Simulate SimulateCmd `cmd:"" help:"Let the solver play many seeded games"`
	Presets  PresetsCmd  `cmd:"" help:"List the configured board presets"`
}

func setup() (*Globals, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	logger := config.NewLogger(env, os.Stderr)
	mines.Log = logger
	mines.Debug = env.Development

	if err := config.SetupLogrus(solver.Log, env, os.Stderr); err != nil {
		return nil, err
	}

	presets, err := config.LoadPresets(env.PresetsFile)
	if err != nil {
		return nil, err
	}

	logger.Debug("config",
		slog.Bool("development", env.Development),
		slog.String("presets_file", env.PresetsFile),
		slog.Int("presets", len(presets)))

	return &Globals{Env: env, Logger: logger, Presets: presets}, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	globals, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mines: %s\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mines"),
		kong.Description("Minesweeper in the terminal, with a solver for batch runs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Bind(globals),
		kong.BindTo(mainCtx, (*context.Context)(nil)),
	)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
