package solver

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

var Log = logrus.New()

type Result struct {
	Phase   mines.Phase `json:"phase"`
	Moves   int         `json:"moves"`
	Guesses int         `json:"guesses"`
	Flags   int         `json:"flags"`
}

// Solver plays a board to the end using only what a player can see. It
// deduces from one numbered cell at a time and guesses when stuck.
type Solver struct {
	board *mines.Board
	rnd   *rand.Rand

	known        mines.Grid
	queued       []bool
	inspectQueue deque.Deque[int]

	result Result
}

func New(board *mines.Board, rnd *rand.Rand) *Solver {
	known := make(mines.Grid, board.Cells())
	for i := range known {
		known[i] = mines.Hidden
	}
	return &Solver{
		board:  board,
		rnd:    rnd,
		known:  known,
		queued: make([]bool, board.Cells()),
	}
}

func (s *Solver) Solve() Result {
	if s.board.RevealedCount() == 0 {
		s.open(s.board.Rows/2, s.board.Cols/2)
	} else {
		s.sync()
	}

	for !s.board.Phase().Over() {
		if s.processInspectQueue() || s.board.Phase().Over() {
			continue
		}
		if !s.guess() {
			break
		}
	}

	s.result.Phase = s.board.Phase()
	s.result.Flags = s.board.FlagsUsed()

	Log.WithFields(logrus.Fields{
		"params":  s.board.Seed(),
		"phase":   s.result.Phase.String(),
		"moves":   s.result.Moves,
		"guesses": s.result.Guesses,
	}).Debug("game finished")

	return s.result
}

func (s *Solver) open(r, c int) mines.RevealOutcome {
	outcome := s.board.Reveal(r, c)
	if outcome != mines.Ignored {
		s.result.Moves++
		s.sync()
	}
	return outcome
}

func (s *Solver) flag(r, c int) {
	switch outcome := s.board.ToggleFlag(r, c); outcome {
	case mines.FlagPlaced:
		s.result.Moves++
		s.sync()
	default:
		Log.WithFields(logrus.Fields{
			"row": r, "col": c, "outcome": outcome.String(),
		}).Warn("could not flag a deduced mine")
	}
}

func (s *Solver) enqueue(i int) {
	if !s.queued[i] {
		s.queued[i] = true
		s.inspectQueue.PushBack(i)
	}
}

// sync picks up every cell that changed since the last move and queues it
// together with its neighbours for inspection.
func (s *Solver) sync() {
	cols := s.board.Cols
	for i, st := range s.board.Snapshot() {
		if st == s.known[i] {
			continue
		}
		s.known[i] = st
		s.enqueue(i)
		for rr, cc := range s.board.Neighbours(i/cols, i%cols) {
			s.enqueue(rr*cols + cc)
		}
	}
}

func (s *Solver) processInspectQueue() (progress bool) {
	for s.inspectQueue.Len() != 0 {
		i := s.inspectQueue.PopFront()
		s.queued[i] = false
		if s.inspectCell(i) {
			progress = true
		}
		if s.board.Phase().Over() {
			return
		}
	}
	return
}

func (s *Solver) inspectCell(i int) bool {
	st := s.known[i]
	if !st.Revealed() || st.Value() <= 0 {
		return false
	}

	cols := s.board.Cols
	r, c := i/cols, i%cols

	var flagged int
	var untouched [][2]int
	for rr, cc := range s.board.Neighbours(r, c) {
		switch s.known[rr*cols+cc] {
		case mines.Flagged:
			flagged++
		case mines.Hidden:
			untouched = append(untouched, [2]int{rr, cc})
		}
	}
	if len(untouched) == 0 {
		return false
	}

	remainingMines := st.Value() - flagged
	switch {
	case remainingMines == 0:
		for _, p := range untouched {
			if s.open(p[0], p[1]) == mines.HitMine {
				Log.WithField("cell", p).Error("opened a mined cell while inspecting")
				return true
			}
		}
		return true
	case remainingMines == len(untouched):
		for _, p := range untouched {
			s.flag(p[0], p[1])
		}
		return true
	}
	return false
}

func (s *Solver) guess() bool {
	var candidates []int
	for i, st := range s.known {
		if st == mines.Hidden {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		Log.WithField("params", s.board.Seed()).Error("nothing left to guess")
		return false
	}
	i := candidates[s.rnd.IntN(len(candidates))]
	s.result.Guesses++
	s.open(i/s.board.Cols, i%s.board.Cols)
	return true
}
