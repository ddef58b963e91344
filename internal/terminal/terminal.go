// Package terminal plays minesweeper on a text stream.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
)

const help = `commands:
  o X Y    open a cell
  f X Y    toggle a flag
  n        new game
  d LEVEL  new game on easy, medium or hard
  c W:H:M  new game on a custom board
  q        quit
`

type Terminal struct {
	log    logrus.FieldLogger
	engine *mines.Engine
	in     io.Reader
	out    io.Writer
}

func New(logger logrus.FieldLogger, engine *mines.Engine, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		log:    logger,
		engine: engine,
		in:     in,
		out:    out,
	}
}

func (t *Terminal) scan(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Run plays until the input ends, the player quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if _, err := io.WriteString(t.out, help); err != nil {
		return err
	}
	if err := Render(t.out, t.engine); err != nil {
		return err
	}

	lines, errc := t.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			quit, err := t.handle(strings.TrimSpace(line))
			if err != nil || quit {
				return err
			}
		}
	}
}

func (t *Terminal) handle(line string) (quit bool, err error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit":
		return true, nil
	case "h", "help", "?":
		_, err = io.WriteString(t.out, help)
		return false, err
	}

	u, cmdErr := command.Execute(t.engine, line)
	if cmdErr != nil {
		t.log.WithError(cmdErr).WithField("command", line).Debug("unable to process command")
		_, err = fmt.Fprintf(t.out, "error: %v\n", cmdErr)
		return false, err
	}
	if err := Render(t.out, t.engine); err != nil {
		return false, err
	}
	switch {
	case u.Won:
		_, err = io.WriteString(t.out, "You win!\n")
	case u.Lost:
		_, err = io.WriteString(t.out, "Game over. Type n for a new game.\n")
	}
	return false, err
}
