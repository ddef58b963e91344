// Package command implements the line protocol used by the presentation
// adapters to drive a [mines.Engine].
//
//	g        no-op, returns the current counters
//	o X Y    reveal
//	f X Y    toggle flag
//	n        new game, same board
//	d LEVEL  new game with a preset (easy, medium, hard)
//	c W:H:M  new game with a custom board
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Kind string

const (
	Noop       Kind = "g"
	Open       Kind = "o"
	Flag       Kind = "f"
	Reset      Kind = "n"
	Difficulty Kind = "d"
	Custom     Kind = "c"
)

// Maps known commands to number of arguments
var commandNargs = map[Kind]int{
	Noop:       0,
	Open:       2,
	Flag:       2,
	Reset:      0,
	Difficulty: 1,
	Custom:     1,
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("invalid number of arguments")
)

type Command struct {
	Kind Kind
	X, Y int
	Arg  string
}

func (c Command) String() string {
	switch c.Kind {
	case Open, Flag:
		return fmt.Sprintf("%s %d %d", c.Kind, c.X, c.Y)
	case Difficulty, Custom:
		return fmt.Sprintf("%s %s", c.Kind, c.Arg)
	default:
		return string(c.Kind)
	}
}

func parseXY(args []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmpty
	}
	kind := Kind(strings.ToLower(parts[0]))
	nargs, ok := commandNargs[kind]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d, got %d", ErrArgs, kind, nargs, len(parts)-1,
		)
	}

	cmd := Command{Kind: kind}
	switch kind {
	case Open, Flag:
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.X, cmd.Y = x, y
	case Difficulty, Custom:
		cmd.Arg = parts[1]
	}
	return cmd, nil
}

// Execute runs the command against the engine.
func (c Command) Execute(e *mines.Engine) (*mines.Update, error) {
	switch c.Kind {
	case Noop:
		return &mines.Update{Outcome: e.Outcome(), Flags: e.Flags()}, nil
	case Open:
		return e.Reveal(c.X, c.Y)
	case Flag:
		return e.Flag(c.X, c.Y)
	case Reset:
		return e.Reset(), nil
	case Difficulty:
		d, err := mines.ParseDifficulty(c.Arg)
		if err != nil {
			return nil, err
		}
		return e.ChangeDifficulty(d)
	case Custom:
		params, err := mines.ParseSeed(c.Arg)
		if err != nil {
			return nil, err
		}
		return e.Resize(*params)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCommand, string(c.Kind))
}

// Execute parses and runs a single line.
func Execute(e *mines.Engine, line string) (*mines.Update, error) {
	cmd, err := Parse(line)
	if err != nil {
		return nil, err
	}
	return cmd.Execute(e)
}
