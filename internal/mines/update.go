package mines

import "fmt"

type Outcome int8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

// [Outcome] implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, v := range []Outcome{InProgress, Won, Lost} {
		if v.String() == string(text) {
			*o = v
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}

func (o Outcome) Terminal() bool {
	return o != InProgress
}

type Change struct {
	X     int       `json:"x"`
	Y     int       `json:"y"`
	State CellState `json:"state"`
}

type FlagCounter struct {
	Flagged int `json:"flagged"`
	Total   int `json:"total"`
}

func (c FlagCounter) String() string {
	return fmt.Sprintf("%d / %d", c.Flagged, c.Total)
}

// Update describes what one engine operation did.
type Update struct {
	// Changes holds every cell whose state changed, once per cell, in the
	// order the cells were first touched.
	Changes []Change `json:"changes"`

	Outcome Outcome `json:"outcome"`

	// Won and Lost are set only by the operation that ended the game.
	Won  bool `json:"won,omitempty"`
	Lost bool `json:"lost,omitempty"`

	Flags        FlagCounter `json:"flags"`
	FlagsChanged bool        `json:"flags_changed,omitempty"`

	// Cleared is set when a new game started; every cell is back to
	// Unknown. Resized additionally means the board dimensions changed.
	Cleared bool `json:"cleared,omitempty"`
	Resized bool `json:"resized,omitempty"`
}

func (u *Update) Empty() bool {
	return len(u.Changes) == 0 && !u.Won && !u.Lost &&
		!u.FlagsChanged && !u.Cleared && !u.Resized
}

// changeSet records the state each touched cell had before the operation.
type changeSet struct {
	order  []int
	before map[int]CellState
}

func newChangeSet() *changeSet {
	return &changeSet{before: make(map[int]CellState)}
}

func (cs *changeSet) touch(i int, prev CellState) {
	if _, ok := cs.before[i]; ok {
		return
	}
	cs.before[i] = prev
	cs.order = append(cs.order, i)
}

func (cs *changeSet) changes(view Grid, width int) []Change {
	changes := make([]Change, 0, len(cs.order))
	for _, i := range cs.order {
		if view[i] == cs.before[i] {
			continue
		}
		changes = append(changes, Change{X: i % width, Y: i / width, State: view[i]})
	}
	return changes
}
