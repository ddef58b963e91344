package mines

import (
	"fmt"
	"maps"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameState is the per-game bookkeeping of an [Engine].
type GameState struct {
	FirstMine bool // no mine has been shown yet
	Revealed  int  // opened non-mine cells
	Flags     map[Point]struct{}
	Outcome   Outcome
}

func newGameState() GameState {
	return GameState{
		FirstMine: true,
		Flags:     make(map[Point]struct{}),
		Outcome:   InProgress,
	}
}

// Engine runs one game at a time. It is not safe for concurrent use.
type Engine struct {
	board *Board
	state GameState
	view  Grid
	rnd   *rand.Rand

	pending *changeSet
	update  *Update
}

// NewEngine starts a game on a fresh board. A nil r is replaced with a
// randomly seeded generator.
func NewEngine(params GameParams, r *rand.Rand) (*Engine, error) {
	if r == nil {
		r = NewRand()
	}
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	Log.WithFields(params.Fields()).Debug("new game")
	return newEngine(board, r), nil
}

func NewEngineForDifficulty(d Difficulty, r *rand.Rand) (*Engine, error) {
	params, err := d.Params()
	if err != nil {
		return nil, err
	}
	return NewEngine(params, r)
}

func newEngine(board *Board, r *rand.Rand) *Engine {
	return &Engine{
		board: board,
		state: newGameState(),
		view:  NewGrid(board.Size()),
		rnd:   r,
	}
}

func (e *Engine) Params() GameParams {
	return e.board.GameParams
}

func (e *Engine) Outcome() Outcome {
	return e.state.Outcome
}

func (e *Engine) Revealed() int {
	return e.state.Revealed
}

func (e *Engine) Flags() FlagCounter {
	return FlagCounter{Flagged: len(e.state.Flags), Total: e.board.MineCount}
}

// State returns a copy of the game bookkeeping.
func (e *Engine) State() GameState {
	s := e.state
	s.Flags = maps.Clone(e.state.Flags)
	return s
}

// Grid returns a copy of the player's view.
func (e *Engine) Grid() Grid {
	return append(Grid(nil), e.view...)
}

func (e *Engine) CellState(x, y int) CellState {
	return e.view[e.board.index(x, y)]
}

func (e *Engine) String() string {
	return e.view.ToString(e.board.Width)
}

func (e *Engine) checkBounds(op string, x, y int) error {
	if !e.board.PointInBounds(x, y) {
		return fmt.Errorf(
			"%w: %s (%d, %d) on a %dx%d board",
			ErrOutOfBounds, op, x, y, e.board.Width, e.board.Height,
		)
	}
	return nil
}

func (e *Engine) begin() {
	e.pending = newChangeSet()
	e.update = &Update{}
}

func (e *Engine) finish() *Update {
	u := e.update
	u.Changes = e.pending.changes(e.view, e.board.Width)
	u.Outcome = e.state.Outcome
	u.Flags = e.Flags()
	e.pending, e.update = nil, nil
	return u
}

func (e *Engine) set(i int, s CellState) {
	e.pending.touch(i, e.view[i])
	e.view[i] = s
}

// Reveal opens the cell at (x, y). Opening a mine loses the game; opening a
// cell without neighbouring mines opens the whole surrounding region.
func (e *Engine) Reveal(x, y int) (*Update, error) {
	if err := e.checkBounds("reveal", x, y); err != nil {
		return nil, err
	}
	e.begin()

	c := e.board.at(x, y)
	switch {
	case e.state.Outcome.Terminal(), c.Revealed, c.Flagged:
	case c.Mine:
		e.revealCell(x, y)
		e.lose()
	case e.board.AdjacentMines(x, y) > 0:
		e.revealCell(x, y)
	default:
		for _, p := range e.board.FloodRegion(x, y) {
			e.revealCell(p.X, p.Y)
		}
	}

	return e.finish(), nil
}

// revealCell opens a single cell.
func (e *Engine) revealCell(x, y int) {
	i := e.board.index(x, y)
	c := e.board.at(x, y)
	if c.Revealed {
		return
	}

	/*
	 * Number of covered cells once this one is open. When it equals the
	 * mine count, every safe cell has been opened.
	 */
	covered := e.board.Size() - e.state.Revealed - 1

	switch {
	case c.Flagged && e.state.Outcome.Terminal():
		/*
		 * The game is over: judge the flag. A right guess stays
		 * flagged, a wrong one is removed and the cell opened.
		 */
		if c.Mine {
			e.set(i, CorrectlyFlagged)
			return
		}
		e.unflag(x, y)
		e.revealCell(x, y)

	case c.Mine:
		if e.state.FirstMine {
			e.set(i, ExplodedMine)
			e.state.FirstMine = false
		} else {
			e.set(i, UnflaggedMine)
		}
		c.Revealed = true

	default:
		e.set(i, opened(e.board.AdjacentMines(x, y)))
		c.Revealed = true
		e.state.Revealed++
		if c.Flagged {
			e.unflag(x, y)
		}
		if covered == e.board.MineCount && e.state.Outcome == InProgress {
			e.win()
		}
	}
}

func (e *Engine) win() {
	e.state.Outcome = Won
	e.update.Won = true
	Log.WithFields(e.board.Fields()).Debug("game won")
}

// lose ends the game and runs every cell through revealCell once.
func (e *Engine) lose() {
	e.state.Outcome = Lost
	for y := range e.board.Height {
		for x := range e.board.Width {
			e.revealCell(x, y)
		}
	}
	e.update.Lost = true
	Log.WithFields(e.board.Fields()).
		WithField("revealed", e.state.Revealed).
		Debug("game lost")
}

// Flag toggles the flag on a covered cell. A new flag is only placed while
// fewer flags than mines are down.
func (e *Engine) Flag(x, y int) (*Update, error) {
	if err := e.checkBounds("flag", x, y); err != nil {
		return nil, err
	}
	e.begin()

	i := e.board.index(x, y)
	c := e.board.at(x, y)
	switch {
	case e.state.Outcome.Terminal(), c.Revealed:
	case !c.Flagged && len(e.state.Flags) < e.board.MineCount:
		c.Flagged = true
		e.state.Flags[Point{x, y}] = struct{}{}
		e.update.FlagsChanged = true
		e.set(i, Flagged)
	case c.Flagged:
		e.unflag(x, y)
		e.set(i, Unknown)
	}

	return e.finish(), nil
}

func (e *Engine) unflag(x, y int) {
	e.board.at(x, y).Flagged = false
	delete(e.state.Flags, Point{x, y})
	e.update.FlagsChanged = true
}

// Reset starts a new game on a board of the same size.
func (e *Engine) Reset() *Update {
	e.begin()
	for i, s := range e.view {
		if s != Unknown {
			e.set(i, Unknown)
		}
	}
	e.board = newBoard(e.board.GameParams, e.rnd)
	e.state = newGameState()
	e.update.Cleared = true
	e.update.FlagsChanged = true

	Log.WithFields(e.board.Fields()).Debug("game reset")
	return e.finish()
}

// ChangeDifficulty starts a new game with the preset dimensions of d.
func (e *Engine) ChangeDifficulty(d Difficulty) (*Update, error) {
	params, err := d.Params()
	if err != nil {
		return nil, err
	}
	return e.Resize(params)
}

// Resize starts a new game with the given dimensions. Cell changes are not
// listed: the whole grid is new and Unknown.
func (e *Engine) Resize(params GameParams) (*Update, error) {
	board, err := NewBoard(params, e.rnd)
	if err != nil {
		return nil, err
	}

	e.begin()
	e.board = board
	e.view = NewGrid(board.Size())
	e.state = newGameState()
	e.update.Cleared = true
	e.update.Resized = true
	e.update.FlagsChanged = true

	Log.WithFields(params.Fields()).Debug("game resized")
	return e.finish(), nil
}
