package session

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Session owns the single live game of a driver. Starting a new game
// replaces the board; nothing survives the process.
type Session struct {
	ID    uuid.UUID
	Board *mines.Board

	logger  *slog.Logger
	clock   quartz.Clock
	rnd     *rand.Rand
	presets []config.Preset

	startedAt time.Time
	endedAt   time.Time
}

func New(
	logger *slog.Logger,
	clock quartz.Clock,
	rnd *rand.Rand,
	presets []config.Preset,
) *Session {
	return &Session{
		logger:  logger,
		clock:   clock,
		rnd:     rnd,
		presets: presets,
	}
}

// Start replaces the current game with a fresh board and restarts the
// timer. On a [*mines.ConfigError] the current game is kept.
func (s *Session) Start(params mines.Params) error {
	board, err := mines.NewGame(params, s.rnd)
	if err != nil {
		return err
	}
	s.ID = uuid.New()
	s.Board = board
	s.startedAt = s.clock.Now()
	s.endedAt = time.Time{}

	s.logger.Info("new game",
		slog.String("id", s.ID.String()),
		slog.String("params", params.Seed()))
	return nil
}

func (s *Session) StartPreset(name string) error {
	preset, ok := config.FindPreset(s.presets, name)
	if !ok {
		return ErrUnknownPreset
	}
	return s.Start(preset.Params())
}

// Elapsed is the play time of the current game. The timer stops when the
// game is won or lost.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.startedAt.IsZero():
		return 0
	case !s.endedAt.IsZero():
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.clock.Now().Sub(s.startedAt)
	}
}

func (s *Session) Presets() []config.Preset {
	return s.presets
}

// afterMove stops the timer once the board reaches a terminal phase.
func (s *Session) afterMove() {
	if s.Board == nil || !s.Board.Phase().Over() || !s.endedAt.IsZero() {
		return
	}
	s.endedAt = s.clock.Now()
	s.logger.Info("game over",
		slog.String("id", s.ID.String()),
		slog.String("phase", s.Board.Phase().String()),
		slog.Duration("elapsed", s.Elapsed()))
}

type Status struct {
	ID             string       `json:"id"`
	Params         mines.Params `json:"params"`
	Phase          string       `json:"phase"`
	MinesRemaining int          `json:"mines_remaining"`
	ElapsedMs      int64        `json:"elapsed_ms"`
}

func (s *Session) Status() Status {
	if s.Board == nil {
		return Status{Phase: mines.NotStarted.String()}
	}
	return Status{
		ID:             s.ID.String(),
		Params:         s.Board.Params,
		Phase:          s.Board.Phase().String(),
		MinesRemaining: s.Board.MinesRemaining(),
		ElapsedMs:      s.Elapsed().Milliseconds(),
	}
}
