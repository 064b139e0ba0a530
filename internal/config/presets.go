package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Preset is a named board size offered to the player. The engine itself
// knows nothing about presets.
type Preset struct {
	Name  string `hcl:"name,label" json:"name"`
	Rows  int    `hcl:"rows" json:"rows"`
	Cols  int    `hcl:"cols" json:"cols"`
	Mines int    `hcl:"mines" json:"mines"`
}

func (p Preset) Params() mines.Params {
	return mines.Params{Rows: p.Rows, Cols: p.Cols, MineCount: p.Mines}
}

func (p Preset) String() string {
	return fmt.Sprintf("%s %dx%d(%d)", p.Name, p.Rows, p.Cols, p.Mines)
}

type presetsFile struct {
	Presets []Preset `hcl:"preset,block"`
}

func DefaultPresets() []Preset {
	return []Preset{
		{Name: "beginner", Rows: 9, Cols: 9, Mines: 10},
		{Name: "beginner-wide", Rows: 9, Cols: 12, Mines: 15},
		{Name: "intermediate", Rows: 16, Cols: 16, Mines: 40},
		{Name: "expert", Rows: 16, Cols: 30, Mines: 99},
	}
}

// LoadPresets reads preset blocks from an HCL file:
//
//	preset "beginner" {
//	  rows  = 9
//	  cols  = 9
//	  mines = 10
//	}
//
// A missing file yields [DefaultPresets].
func LoadPresets(filename string) ([]Preset, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultPresets(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg presetsFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := ValidatePresets(cfg.Presets); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg.Presets, nil
}

func ValidatePresets(presets []Preset) error {
	if len(presets) == 0 {
		return fmt.Errorf("at least one preset must be configured")
	}
	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		name := strings.ToLower(p.Name)
		if seen[name] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[name] = true
		if err := p.Params().Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
