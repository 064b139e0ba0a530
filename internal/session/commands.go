package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Command string

const (
	Noop    Command = "g"
	Open    Command = "o"
	Flag    Command = "f"
	Chord   Command = "c"
	Restart Command = "r"
	NewGame Command = "n"
)

var commandNargs = map[Command]int{
	Noop:    0,
	Open:    2,
	Flag:    2,
	Chord:   2,
	Restart: 0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrNoGame         = errors.New("no game in progress, start one with 'n'")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrBadNewGame     = errors.New("new game needs preset=<name> or rows=<n> cols=<n> mines=<n>")
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type newGameArgs struct {
	Preset string `schema:"preset"`
	Rows   int    `schema:"rows"`
	Cols   int    `schema:"cols"`
	Mines  int    `schema:"mines"`
}

func decodeNewGame(args []string) (newGameArgs, error) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return newGameArgs{}, ErrBadNewGame
		}
		src[key] = append(src[key], value)
	}
	var dto newGameArgs
	if err := decoder.Decode(&dto, src); err != nil {
		return newGameArgs{}, fmt.Errorf("%w: %w", ErrBadNewGame, err)
	}
	if dto.Preset != "" {
		return dto, nil
	}
	for _, key := range []string{"rows", "cols", "mines"} {
		if _, ok := src[key]; !ok {
			return newGameArgs{}, ErrBadNewGame
		}
	}
	return dto, nil
}

func parseRC(args []string) (r int, c int, err error) {
	if r, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if c, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// Reply is what the driver shows after a command: the outcome of the move,
// if any, and the game status.
type Reply struct {
	Command Command `json:"command"`
	Outcome string  `json:"outcome,omitempty"`
	Status
}

// Execute runs one protocol line:
//
//	g                          no-op, report status
//	o <row> <col>              reveal
//	f <row> <col>              toggle flag
//	c <row> <col>              chord
//	r                          restart with the same board size
//	n preset=<name>            new game from a preset
//	n rows=<n> cols=<n> mines=<n>
//
// Moves the engine refuses come back with an "ignored" or "rejected"
// outcome and no error.
func (s *Session) Execute(line string) (Reply, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Reply{}, ErrUnknownCommand
	}
	cmd, args := Command(strings.ToLower(parts[0])), parts[1:]

	if cmd == NewGame {
		return s.newGame(args)
	}

	nargs, ok := commandNargs[cmd]
	if !ok {
		return Reply{}, ErrUnknownCommand
	}
	if nargs != len(args) {
		return Reply{}, ErrBadArgs
	}
	if s.Board == nil {
		return Reply{}, ErrNoGame
	}

	reply := Reply{Command: cmd}
	switch cmd {
	case Noop:
	case Restart:
		if err := s.Start(s.Board.Params); err != nil {
			return Reply{}, err
		}
	default:
		r, c, err := parseRC(args)
		if err != nil {
			return Reply{}, err
		}
		reply.Outcome = s.move(cmd, r, c)
	}

	reply.Status = s.Status()
	return reply, nil
}

func (s *Session) move(cmd Command, r, c int) string {
	defer s.afterMove()
	switch cmd {
	case Open:
		return s.Board.Reveal(r, c).String()
	case Flag:
		return s.Board.ToggleFlag(r, c).String()
	case Chord:
		return s.Board.Chord(r, c).String()
	}
	return mines.Ignored.String()
}

func (s *Session) newGame(args []string) (Reply, error) {
	dto, err := decodeNewGame(args)
	if err != nil {
		return Reply{}, err
	}
	if dto.Preset != "" {
		err = s.StartPreset(dto.Preset)
	} else {
		err = s.Start(mines.Params{Rows: dto.Rows, Cols: dto.Cols, MineCount: dto.Mines})
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Command: NewGame, Status: s.Status()}, nil
}
