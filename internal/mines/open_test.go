package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockHasMine(b *Board, r, c int) bool {
	for i := range b.neighbourhood(r, c) {
		if b.values[i] == mineValue {
			return true
		}
	}
	return false
}

func TestFirstClickRelocatesAdjacentMine(t *testing.T) {
	params := Params{Rows: 9, Cols: 9, MineCount: 10}
	board, err := NewGame(params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	mine := mineCells(board)[0]
	var r, c int
	for rr, cc := range board.Neighbours(mine[0], mine[1]) {
		r, c = rr, cc
		break
	}
	require.True(t, blockHasMine(board, r, c))

	outcome := board.Reveal(r, c)
	require.NotEqual(t, HitMine, outcome)
	require.NotEqual(t, Ignored, outcome)

	assert.False(t, blockHasMine(board, r, c))
	assert.Len(t, mineCells(board), params.MineCount)
	assert.Equal(t, CellState(0), board.CellState(r, c))
	assert.NotContains(t, mineCells(board), mine)
}

func TestFirstClickIsAlwaysSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params Params
	}{
		{"9x9(10)", Params{Rows: 9, Cols: 9, MineCount: 10}},
		{"9x9(35)", Params{Rows: 9, Cols: 9, MineCount: 35}},
		{"16x16(40)", Params{Rows: 16, Cols: 16, MineCount: 40}},
		{"16x30(99)", Params{Rows: 16, Cols: 30, MineCount: 99}},
		{"16x30(170)", Params{Rows: 16, Cols: 30, MineCount: 170}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for sr := range test.params.Rows {
				for sc := range test.params.Cols {
					board, err := NewGame(test.params, r)
					require.NoError(t, err)

					outcome := board.Reveal(sr, sc)
					if outcome == HitMine || outcome == Ignored {
						t.Fatalf("first click %s @ %d:%d gave %s", test.name, sr, sc, outcome)
					}
					if blockHasMine(board, sr, sc) {
						t.Errorf("mine left next to first click %s @ %d:%d", test.name, sr, sc)
					}
				}
			}
		})
	}
}

func TestFirstClickOnDenseBoards(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		r, c   int
	}{
		{"3x3(8) centre", Params{Rows: 3, Cols: 3, MineCount: 8}, 1, 1},
		{"4x4(15) corner", Params{Rows: 4, Cols: 4, MineCount: 15}, 0, 0},
		{"4x4(15) inner", Params{Rows: 4, Cols: 4, MineCount: 15}, 2, 1},
		{"2x5(9) edge", Params{Rows: 2, Cols: 5, MineCount: 9}, 1, 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := range uint64(20) {
				board, err := NewGame(test.params, rand.New(rand.NewPCG(seed, 2)))
				require.NoError(t, err)

				assert.Equal(t, Win, board.Reveal(test.r, test.c))
				assert.Equal(t, Won, board.Phase())
				assert.Len(t, mineCells(board), test.params.MineCount)
			}
		})
	}
}

func TestRelocationOnlyOnFirstReveal(t *testing.T) {
	board := boardWithMines(t, 3, 7, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3})

	require.Equal(t, Revealed, board.Reveal(1, 0))
	before := mineCells(board)

	require.Equal(t, Revealed, board.Reveal(1, 4))
	assert.Equal(t, before, mineCells(board))
	assert.Equal(t, CellState(3), board.CellState(1, 4))
}

func TestRevealCascadesToWin(t *testing.T) {
	board := boardWithMines(t, 5, 5, [2]int{0, 0})

	assert.Equal(t, Win, board.Reveal(4, 4))
	assert.Equal(t, Won, board.Phase())
	assert.Equal(t, 24, board.RevealedCount())
	assert.True(t, board.CheckWin())
	assert.Equal(t, Hidden, board.CellState(0, 0))
	assert.Equal(t, CellState(1), board.CellState(1, 1))
	assert.Equal(t, CellState(0), board.CellState(4, 4))

	assert.Equal(t, Ignored, board.Reveal(0, 0))
	assert.Equal(t, FlagIgnored, board.ToggleFlag(0, 0))
}

func TestRevealMineLosesGame(t *testing.T) {
	board := boardWithMines(t, 3, 7, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3})

	require.Equal(t, Revealed, board.Reveal(1, 0))
	require.Equal(t, 9, board.RevealedCount())
	require.Equal(t, FlagPlaced, board.ToggleFlag(2, 3))

	assert.Equal(t, HitMine, board.Reveal(0, 3))
	assert.Equal(t, Lost, board.Phase())
	for r := range 3 {
		assert.Equal(t, Mine, board.CellState(r, 3))
	}
	assert.Equal(t, Hidden, board.CellState(1, 6))
	assert.Zero(t, board.FlagsUsed())

	assert.Equal(t, Ignored, board.Reveal(1, 6))
	assert.Equal(t, FlagIgnored, board.ToggleFlag(1, 6))
	assert.Equal(t, Ignored, board.Chord(1, 2))
	assert.Equal(t, Lost, board.Phase())
}

func TestRevealIgnored(t *testing.T) {
	board := boardWithMines(t, 3, 7, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3})

	assert.Equal(t, Ignored, board.Reveal(-1, 0))
	assert.Equal(t, Ignored, board.Reveal(0, 7))
	assert.Equal(t, Ignored, board.Reveal(3, 0))

	require.Equal(t, FlagPlaced, board.ToggleFlag(1, 0))
	assert.Equal(t, Ignored, board.Reveal(1, 0))
	assert.Zero(t, board.RevealedCount())
	require.Equal(t, FlagRemoved, board.ToggleFlag(1, 0))

	require.Equal(t, Revealed, board.Reveal(1, 0))
	assert.Equal(t, Ignored, board.Reveal(1, 0))
	assert.Equal(t, Ignored, board.Reveal(0, 1))
}

func TestFloodFillStopsAtFlags(t *testing.T) {
	board := boardWithMines(t, 1, 6, [2]int{0, 5})

	require.Equal(t, FlagPlaced, board.ToggleFlag(0, 2))
	require.Equal(t, Revealed, board.Reveal(0, 0))

	assert.Equal(t, 2, board.RevealedCount())
	assert.Equal(t, Flagged, board.CellState(0, 2))
	assert.Equal(t, Hidden, board.CellState(0, 3))
}

// expectedFill computes the zero-valued region connected to start and its
// one-cell border independently of floodFill.
func expectedFill(b *Board, start int) map[int]bool {
	want := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.values[i] != 0 {
			continue
		}
		r, c := b.coords(i)
		for rr, cc := range b.Neighbours(r, c) {
			j := b.index(rr, cc)
			if !want[j] {
				want[j] = true
				stack = append(stack, j)
			}
		}
	}
	return want
}

func TestFloodFillClosure(t *testing.T) {
	t.Parallel()

	params := []Params{
		{Rows: 9, Cols: 9, MineCount: 10},
		{Rows: 16, Cols: 16, MineCount: 40},
		{Rows: 16, Cols: 30, MineCount: 99},
	}
	r := rand.New(rand.NewPCG(1, 2))

	for _, p := range params {
		for range 100 {
			board, err := NewGame(p, r)
			require.NoError(t, err)

			sr, sc := r.IntN(p.Rows), r.IntN(p.Cols)
			board.relocate(sr, sc)
			want := expectedFill(board, board.index(sr, sc))

			outcome := board.Reveal(sr, sc)
			require.Contains(t, []RevealOutcome{Revealed, Win}, outcome)

			for i := range board.values {
				assert.Equal(t, want[i], board.revealed[i], "%s cell %d", p.Seed(), i)
			}
			assert.Equal(t, len(want), board.RevealedCount())
		}
	}
}

func TestFloodFillLargeBoard(t *testing.T) {
	board := boardWithMines(t, 400, 400, [2]int{0, 0})

	assert.Equal(t, Win, board.Reveal(399, 399))
	assert.Equal(t, 400*400-1, board.RevealedCount())
}

func TestRevealedIsMonotonic(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	params := Params{Rows: 16, Cols: 16, MineCount: 40}

	for range 50 {
		board, err := NewGame(params, r)
		require.NoError(t, err)

		prev := board.Snapshot()
		for !board.Phase().Over() {
			row, col := r.IntN(params.Rows), r.IntN(params.Cols)
			if r.IntN(4) == 0 {
				board.ToggleFlag(row, col)
			} else {
				board.Reveal(row, col)
			}

			next := board.Snapshot()
			for i := range prev {
				if prev[i].Revealed() {
					require.True(t, next[i].Revealed(), "cell %d was hidden again", i)
					require.Equal(t, prev[i], next[i])
				}
			}
			prev = next
		}
	}
}

func TestWinExactlyWhenAllSafeCellsRevealed(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	params := Params{Rows: 9, Cols: 9, MineCount: 10}

	for range 50 {
		board, err := NewGame(params, r)
		require.NoError(t, err)

		board.Reveal(4, 4)
		for i, v := range board.values {
			if board.Phase().Over() {
				break
			}
			assert.False(t, board.CheckWin())
			if v != mineValue {
				row, col := board.coords(i)
				board.Reveal(row, col)
			}
		}

		assert.Equal(t, Won, board.Phase())
		assert.Equal(t, params.Cells()-params.MineCount, board.RevealedCount())
	}
}

func TestChord(t *testing.T) {
	board := boardWithMines(t, 3, 3, [2]int{0, 0})
	require.Equal(t, FlagPlaced, board.ToggleFlag(0, 0))

	// reveal (1,1) by hand so the first-click relocation does not run
	board.revealed[board.index(1, 1)] = true
	board.nrevealed++

	assert.Equal(t, Ignored, board.Chord(2, 2))
	assert.Equal(t, Win, board.Chord(1, 1))
	assert.Equal(t, Won, board.Phase())
	assert.Equal(t, Flagged, board.CellState(0, 0))
}

func TestChordNeedsMatchingFlags(t *testing.T) {
	board := boardWithMines(t, 3, 3, [2]int{0, 0})
	board.revealed[board.index(1, 1)] = true
	board.nrevealed++

	assert.Equal(t, Ignored, board.Chord(1, 1))

	require.Equal(t, FlagPlaced, board.ToggleFlag(2, 2))
	assert.Equal(t, HitMine, board.Chord(1, 1))
	assert.Equal(t, Lost, board.Phase())
}
