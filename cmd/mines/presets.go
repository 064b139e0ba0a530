package main

import (
	"encoding/json"
	"fmt"
	"os"
)

type PresetsCmd struct {
	JSON bool `help:"Print as JSON"`
}

func (c *PresetsCmd) Run(g *Globals) error {
	if c.JSON {
		return json.NewEncoder(os.Stdout).Encode(g.Presets)
	}
	for _, p := range g.Presets {
		fmt.Fprintln(os.Stdout, p)
	}
	return nil
}
