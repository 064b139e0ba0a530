package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what the player is allowed to see of a single cell.
type CellState int8

const (
	Hidden  CellState = -3
	Flagged CellState = -2
	Mine    CellState = -1 // revealed mine
	// 0-8 for a revealed safe cell with given number of mined neighbours
)

func (s CellState) Revealed() bool {
	return s >= Mine
}

// Value is the cell value behind a revealed state: -1 for a mine, 0..8
// otherwise. It is meaningless for hidden and flagged cells.
func (s CellState) Value() int {
	return int(s)
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "#"
	case s == Flagged:
		return "F"
	case s == Mine:
		return "*"
	case s == 0:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(cols int) string {
	var b strings.Builder
	for r := range len(g) / cols {
		for c := range cols {
			i := r*cols + c
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func (g Grid) Count(s CellState) (n int) {
	for _, cs := range g {
		if cs == s {
			n++
		}
	}
	return
}
