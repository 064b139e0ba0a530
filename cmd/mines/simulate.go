package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/solver"
)

type SimulateCmd struct {
	Preset  string  `default:"beginner" help:"Preset to play"`
	Games   int     `short:"n" default:"1000" help:"Number of games"`
	Workers int     `short:"w" help:"Games played at once (default GOMAXPROCS)"`
	Seed    *uint64 `help:"Base seed, overrides MINES_SEED"`
}

func (c *SimulateCmd) Run(ctx context.Context, g *Globals) error {
	preset, ok := config.FindPreset(g.Presets, c.Preset)
	if !ok {
		return fmt.Errorf("unknown preset %q", c.Preset)
	}
	seed := g.Env.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = newRand(0, 0).Uint64()
	}

	g.Logger.Info("simulating",
		slog.String("preset", preset.String()),
		slog.Int("games", c.Games),
		slog.Uint64("seed", seed))

	stats, err := simulate(ctx, preset.Params(), c.Games, c.Workers, seed)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, stats)
	return nil
}

type simStats struct {
	Games   int
	Wins    int
	Losses  int
	Moves   int
	Guesses int
}

func (s simStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s simStats) String() string {
	return fmt.Sprintf("games: %d, won: %d, lost: %d, win rate: %.1f%%, guesses: %d",
		s.Games, s.Wins, s.Losses, 100*s.WinRate(), s.Guesses)
}

// simulate plays games on independent boards. Game i draws from PCG(seed, i)
// so a run is reproducible regardless of the number of workers.
func simulate(
	ctx context.Context,
	params mines.Params,
	games int,
	workers int,
	seed uint64,
) (simStats, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]solver.Result, games)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range games {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			rnd := newRand(seed, uint64(i))
			board, err := mines.NewGame(params, rnd)
			if err != nil {
				return err
			}
			results[i] = solver.New(board, rnd).Solve()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return simStats{}, err
	}

	var stats simStats
	for _, res := range results {
		switch res.Phase {
		case mines.Won:
			stats.Wins++
		case mines.Lost:
			stats.Losses++
		default:
			continue
		}
		stats.Games++
		stats.Moves += res.Moves
		stats.Guesses += res.Guesses
	}
	return stats, ctx.Err()
}
