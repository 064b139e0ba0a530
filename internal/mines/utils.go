package mines

import "iter"

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func (b *Board) index(r, c int) int {
	return r*b.Cols + c
}

func (b *Board) coords(i int) (r, c int) {
	return i / b.Cols, i % b.Cols
}

// neighbourhood yields the indices of the 3x3 block centred on (r, c),
// centre included, clipped to the board.
func (b *Board) neighbourhood(r, c int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for rr := max(0, r-1); rr <= min(b.Rows-1, r+1); rr++ {
			for cc := max(0, c-1); cc <= min(b.Cols-1, c+1); cc++ {
				if !yield(b.index(rr, cc)) {
					return
				}
			}
		}
	}
}

// Neighbours yields the in-bounds Moore neighbours of (r, c).
func (b *Board) Neighbours(r, c int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for rr := max(0, r-1); rr <= min(b.Rows-1, r+1); rr++ {
			for cc := max(0, c-1); cc <= min(b.Cols-1, c+1); cc++ {
				if rr == r && cc == c {
					continue
				}
				if !yield(rr, cc) {
					return
				}
			}
		}
	}
}
