package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/vancomm/minesweeper/internal/session"
)

type PlayCmd struct {
	Preset string `default:"beginner" help:"Preset to start with"`
	Moves  string `help:"Commands to run before reading input, separated by ';'"`
	Script string `type:"existingfile" help:"Read commands from a file instead of stdin"`
	JSON   bool   `help:"Print replies as JSON lines"`
}

func (c *PlayCmd) Run(ctx context.Context, g *Globals) error {
	s := session.New(g.Logger, quartz.NewReal(), newRand(g.Env.Seed, 0), g.Presets)
	if err := s.StartPreset(c.Preset); err != nil {
		return fmt.Errorf("unable to start %q: %w", c.Preset, err)
	}

	var in io.Reader = os.Stdin
	if c.Script != "" {
		f, err := os.Open(c.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	p := &player{session: s, out: os.Stdout, json: c.JSON, logger: g.Logger}
	p.render(session.Reply{Command: session.Noop, Status: s.Status()})

	for _, move := range byPiece(c.Moves, ";") {
		if move = strings.TrimSpace(move); move != "" {
			p.execute(move)
		}
	}
	return p.loop(ctx, in)
}

type player struct {
	session *session.Session
	out     io.Writer
	json    bool
	logger  *slog.Logger
}

// loop executes one command per input line until EOF, "q" or ctx is done.
func (p *player) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return scanner.Err()
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "q", "quit":
				return nil
			}
			p.execute(line)
		}
	}
}

func (p *player) execute(line string) {
	p.logger.Debug("> " + line)
	reply, err := p.session.Execute(line)
	if err != nil {
		fmt.Fprintf(p.out, "error: %s\n", err)
		return
	}
	p.render(reply)
}

func (p *player) render(reply session.Reply) {
	if p.json {
		if err := json.NewEncoder(p.out).Encode(reply); err != nil {
			p.logger.Error("write", slog.Any("error", err))
		}
		return
	}
	if reply.Outcome != "" {
		fmt.Fprintln(p.out, reply.Outcome)
	}
	if p.session.Board != nil {
		fmt.Fprint(p.out, p.session.Board.String())
	}
	elapsed := time.Duration(reply.ElapsedMs) * time.Millisecond
	fmt.Fprintf(p.out, "%s | mines left: %d | %s\n",
		reply.Phase, reply.MinesRemaining, elapsed.Round(time.Second))
}
