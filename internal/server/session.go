package server

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errMessageType = errors.New("only text messages are accepted")

// Frame is what the server writes after connecting and after every command.
type Frame struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`

	*mines.Update

	// Grid is the whole player view, sent when the board is new.
	Grid mines.Grid `json:"grid,omitempty"`

	Command string `json:"command,omitempty"`
	Error   string `json:"error,omitempty"`
}

type session struct {
	log    logrus.FieldLogger
	conn   *websocket.Conn
	engine *mines.Engine
}

func (s *session) frame(u *mines.Update) *Frame {
	w, h, mc := s.engine.Params().Unpack()
	f := &Frame{Width: w, Height: h, MineCount: mc, Update: u}
	if u != nil && u.Resized {
		f.Grid = s.engine.Grid()
	}
	return f
}

// snapshot describes the current game from scratch.
func (s *session) snapshot() *Frame {
	f := s.frame(&mines.Update{
		Changes: []mines.Change{},
		Outcome: s.engine.Outcome(),
		Flags:   s.engine.Flags(),
	})
	f.Grid = s.engine.Grid()
	return f
}

func (s *session) errorFrame(cmd string, err error) *Frame {
	f := s.frame(nil)
	f.Command = cmd
	f.Error = err.Error()
	return f
}

func (s *session) send(f *Frame) error {
	if err := s.conn.WriteJSON(f); err != nil {
		return err
	}
	s.log.Debug("\t< frame")
	return nil
}

// run reads commands until the peer goes away or ctx is done.
func (s *session) run(ctx context.Context) {
	stop := context.AfterFunc(ctx, func() { s.conn.Close() })
	defer stop()
	defer s.conn.Close()

	s.log.Info("session started")
	defer s.log.Info("session ended")

	if err := s.send(s.snapshot()); err != nil {
		s.log.WithError(err).Error("unable to write json")
		return
	}

	for {
		mt, message, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(
				err, websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				s.log.WithError(err).Warn("abnormal ws break")
			}
			return
		}
		if mt != websocket.TextMessage {
			if err := s.send(s.errorFrame("", errMessageType)); err != nil {
				s.log.WithError(err).Error("unable to write json")
				return
			}
			continue
		}
		if err := s.handle(string(message)); err != nil {
			s.log.WithError(err).Error("unable to write json")
			return
		}
	}
}

// handle executes the commands of one message, stopping at the first that
// fails. Only write errors are returned.
func (s *session) handle(message string) error {
	for _, line := range command.Lines(message) {
		s.log.Debugf("\t> %s", line)
		u, err := command.Execute(s.engine, line)
		if err != nil {
			s.log.WithError(err).WithField("command", line).
				Debug("unable to process command")
			return s.send(s.errorFrame(line, err))
		}
		if err := s.send(s.frame(u)); err != nil {
			return err
		}
	}
	return nil
}
