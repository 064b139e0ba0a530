package mines

import (
	"errors"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

const mineValue int8 = -1

type Phase uint8

const (
	NotStarted Phase = iota
	InProgress
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

func (p Phase) Over() bool {
	return p == Lost || p == Won
}

type RevealOutcome uint8

const (
	Ignored RevealOutcome = iota
	HitMine
	Revealed
	Win
)

func (o RevealOutcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case HitMine:
		return "hit mine"
	case Revealed:
		return "revealed"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

type FlagOutcome uint8

const (
	FlagIgnored FlagOutcome = iota
	FlagPlaced
	FlagRemoved
	FlagRejected
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagIgnored:
		return "ignored"
	case FlagPlaced:
		return "flagged"
	case FlagRemoved:
		return "unflagged"
	case FlagRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Board is a single game. It owns its grids; callers observe it through
// [Board.CellState] and [Board.Snapshot] and change it only through
// [Board.Reveal], [Board.ToggleFlag] and [Board.Chord].
//
// A Board is not safe for concurrent use.
type Board struct {
	Params

	values   []int8 /* -1 for a mine, 0..8 neighbour count otherwise */
	revealed []bool
	flagged  []bool

	phase     Phase
	flagsUsed int
	nrevealed int

	rnd *rand.Rand
}

// NewGame validates params, places the mines using rnd and returns a board
// that is already in progress. The first call to [Board.Reveal] may still
// move mines away from the clicked cell.
func NewGame(params Params, rnd *rand.Rand) (board *Board, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.As(e, &ae) {
				panic(r)
			}
			board, err = nil, ae
		}
	}()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := params.Cells()
	board = &Board{
		Params:   params,
		values:   make([]int8, n),
		revealed: make([]bool, n),
		flagged:  make([]bool, n),
		phase:    NotStarted,
		rnd:      rnd,
	}

	placed := board.placeMines(params.MineCount, nil)
	assert(placed == params.MineCount, "placed %d of %d mines", placed, params.MineCount)
	board.computeCounts()
	board.phase = InProgress

	board.assertInvariants()

	Log.Debug("new game", slog.String("params", params.Seed()))

	return board, nil
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) FlagsUsed() int {
	return b.flagsUsed
}

// MinesRemaining is the flag budget left: mine count minus placed flags.
func (b *Board) MinesRemaining() int {
	return b.MineCount - b.flagsUsed
}

// RevealedCount is the number of revealed cells, mines included once the
// game is lost.
func (b *Board) RevealedCount() int {
	return b.nrevealed
}

// CheckWin reports whether every safe cell has been revealed.
func (b *Board) CheckWin() bool {
	return b.nrevealed == b.Cells()-b.MineCount
}

// CellState reports what the player sees at (r, c). Out of bounds cells
// are reported as [Hidden].
func (b *Board) CellState(r, c int) CellState {
	if !b.InBounds(r, c) {
		return Hidden
	}
	return b.cellState(b.index(r, c))
}

func (b *Board) cellState(i int) CellState {
	switch {
	case b.revealed[i]:
		return CellState(b.values[i])
	case b.flagged[i]:
		return Flagged
	default:
		return Hidden
	}
}

// Snapshot returns a copy of every cell state in row-major order.
func (b *Board) Snapshot() Grid {
	grid := make(Grid, len(b.values))
	for i := range grid {
		grid[i] = b.cellState(i)
	}
	return grid
}

func (b *Board) String() string {
	return b.Snapshot().ToString(b.Cols)
}
