package mines

// ToggleFlag flags a hidden cell while the flag budget allows it and
// unflags a flagged one unconditionally.
func (b *Board) ToggleFlag(r, c int) FlagOutcome {
	if b.phase != InProgress || !b.InBounds(r, c) {
		return FlagIgnored
	}
	i := b.index(r, c)
	if b.revealed[i] {
		return FlagIgnored
	}
	defer b.assertInvariants()

	if b.flagged[i] {
		b.flagged[i] = false
		b.flagsUsed--
		return FlagRemoved
	}
	if b.flagsUsed >= b.MineCount {
		return FlagRejected
	}
	b.flagged[i] = true
	b.flagsUsed++
	return FlagPlaced
}
