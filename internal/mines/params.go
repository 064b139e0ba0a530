package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Rows      int `json:"rows"`
	Cols      int `json:"cols"`
	MineCount int `json:"mine_count"`
}

func (p Params) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p Params) Cells() int {
	return p.Rows * p.Cols
}

// Validate reports a [*ConfigError] unless rows and cols are positive and
// 0 < MineCount < Rows*Cols.
func (p Params) Validate() error {
	switch {
	case p.Rows <= 0:
		return &ConfigError{p, "rows must be positive"}
	case p.Cols <= 0:
		return &ConfigError{p, "cols must be positive"}
	case p.MineCount <= 0:
		return &ConfigError{p, "mine count must be positive"}
	case p.MineCount >= p.Cells():
		return &ConfigError{p, "mine count must leave at least one safe cell"}
	}
	return nil
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Cols, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	return p, nil
}

func (p Params) InBounds(r, c int) bool {
	return 0 <= r && r < p.Rows && 0 <= c && c < p.Cols
}
