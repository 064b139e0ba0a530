package mines

import "log/slog"

// placeMines puts up to n mines on cells that are neither mined already nor
// excluded, each choice uniform over the remaining candidates. It returns
// how many mines were actually placed, which is less than n only when the
// candidates run out.
func (b *Board) placeMines(n int, exclude func(i int) bool) int {
	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(b.values))
	for i, v := range b.values {
		if v != mineValue && (exclude == nil || !exclude(i)) {
			candidates = append(candidates, i)
		}
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	placed := 0
	for ; placed < n && k > 0; placed++ {
		i := b.rnd.IntN(k)
		b.values[candidates[i]] = mineValue
		k--
		candidates[i] = candidates[k]
	}
	return placed
}

func (b *Board) computeCounts() {
	for i, v := range b.values {
		if v == mineValue {
			continue
		}
		r, c := b.coords(i)
		n := 0
		for j := range b.neighbourhood(r, c) {
			if b.values[j] == mineValue {
				n++
			}
		}
		b.values[i] = int8(n)
	}
}

// relocate clears every mine in the 3x3 block around (r, c) and places the
// same number of mines outside it. On boards too dense for that the
// leftovers go back into the block, but never onto (r, c) itself.
func (b *Board) relocate(r, c int) {
	moved := 0
	for i := range b.neighbourhood(r, c) {
		if b.values[i] == mineValue {
			b.values[i] = 0
			moved++
		}
	}
	if moved == 0 {
		return
	}

	inBlock := func(i int) bool {
		rr, cc := b.coords(i)
		return absDiff(rr, r) <= 1 && absDiff(cc, c) <= 1
	}
	placed := b.placeMines(moved, inBlock)
	if placed < moved {
		clicked := b.index(r, c)
		Log.Warn("board too dense to clear first click neighbourhood",
			slog.String("params", b.Seed()),
			slog.Int("row", r), slog.Int("col", c),
			slog.Int("spill", moved-placed))
		placed += b.placeMines(moved-placed, func(i int) bool { return i == clicked })
	}
	assert(placed == moved, "relocated %d of %d mines", placed, moved)

	b.computeCounts()

	Log.Debug("relocated mines for first click",
		slog.Int("row", r), slog.Int("col", c), slog.Int("moved", moved))
}
