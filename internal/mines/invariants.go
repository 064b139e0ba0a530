package mines

// Debug turns on invariant checks after every state change. A failed check
// panics with [AssertionError].
var Debug = false

// panics [AssertionError]
func (b *Board) assertInvariants() {
	if !Debug {
		return
	}

	var mines, flags, revealed int
	for i, v := range b.values {
		assert(!(b.revealed[i] && b.flagged[i]), "cell %d both revealed and flagged", i)
		if b.flagged[i] {
			flags++
		}
		if b.revealed[i] {
			revealed++
		}
		if v == mineValue {
			mines++
			continue
		}
		r, c := b.coords(i)
		n := 0
		for j := range b.neighbourhood(r, c) {
			if b.values[j] == mineValue {
				n++
			}
		}
		assert(int(v) == n, "cell %d holds %d, has %d mined neighbours", i, v, n)
	}

	assert(mines == b.MineCount, "%d mines on board, want %d", mines, b.MineCount)
	assert(flags == b.flagsUsed, "%d flags on board, counter says %d", flags, b.flagsUsed)
	assert(flags <= b.MineCount, "%d flags exceed %d mines", flags, b.MineCount)
	assert(revealed == b.nrevealed, "%d cells revealed, counter says %d", revealed, b.nrevealed)
	if b.phase == Won {
		assert(b.CheckWin(), "won with %d cells revealed", revealed)
	}
	if b.phase == InProgress {
		assert(revealed <= b.Cells()-b.MineCount, "%d cells revealed in progress", revealed)
	}
}
