package mines

import (
	"log/slog"

	"github.com/gammazero/deque"
)

// Reveal opens (r, c). The very first reveal of a game moves any mine out of
// the 3x3 block around the clicked cell before opening it.
//
// Out of bounds coordinates, flagged or already revealed cells and boards
// that are not in progress give [Ignored].
func (b *Board) Reveal(r, c int) RevealOutcome {
	if b.phase != InProgress || !b.InBounds(r, c) {
		return Ignored
	}
	i := b.index(r, c)
	if b.flagged[i] || b.revealed[i] {
		return Ignored
	}
	defer b.assertInvariants()

	if b.nrevealed == 0 {
		b.relocate(r, c)
	}

	if b.values[i] == mineValue {
		/*
		 * The player has landed on a mine. Expose it along with
		 * every other mine on the board.
		 */
		b.revealMines()
		b.phase = Lost
		Log.Debug("game lost", slog.Int("row", r), slog.Int("col", c))
		return HitMine
	}

	b.floodFill(i)

	if b.CheckWin() {
		b.phase = Won
		Log.Debug("game won", slog.String("params", b.Seed()))
		return Win
	}
	return Revealed
}

// floodFill reveals start and keeps opening neighbours of every zero-count
// cell it reaches. Revealed and flagged cells stop the spread.
func (b *Board) floodFill(start int) {
	var todo deque.Deque[int]
	todo.PushBack(start)

	for todo.Len() != 0 {
		i := todo.PopBack()
		if b.revealed[i] || b.flagged[i] {
			continue
		}
		b.revealed[i] = true
		b.nrevealed++

		if b.values[i] != 0 {
			continue
		}
		r, c := b.coords(i)
		for j := range b.neighbourhood(r, c) {
			if !b.revealed[j] && !b.flagged[j] {
				todo.PushBack(j)
			}
		}
	}
}

func (b *Board) revealMines() {
	for i, v := range b.values {
		if v != mineValue || b.revealed[i] {
			continue
		}
		if b.flagged[i] {
			b.flagged[i] = false
			b.flagsUsed--
		}
		b.revealed[i] = true
		b.nrevealed++
	}
}

// Chord opens every hidden, unflagged neighbour of a revealed numbered cell
// once the player has flagged as many neighbours as the cell's number. It
// stops at the first loss or win.
func (b *Board) Chord(r, c int) RevealOutcome {
	if b.phase != InProgress || !b.InBounds(r, c) {
		return Ignored
	}
	i := b.index(r, c)
	if !b.revealed[i] || b.values[i] <= 0 {
		return Ignored
	}

	flags := 0
	for rr, cc := range b.Neighbours(r, c) {
		if b.flagged[b.index(rr, cc)] {
			flags++
		}
	}
	if flags != int(b.values[i]) {
		return Ignored
	}

	outcome := Ignored
	for rr, cc := range b.Neighbours(r, c) {
		switch o := b.Reveal(rr, cc); o {
		case HitMine, Win:
			return o
		case Revealed:
			outcome = Revealed
		}
	}
	return outcome
}
