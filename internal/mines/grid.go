package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what the player sees in a cell.
type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	UnflaggedMine    CellState = 67
	/*
	 * Besides the named states, 0 to 8 mean the cell is open and show
	 * the number of neighbouring mines.
	 *
	 *  - Unknown is the default covered cell.
	 *
	 *  - Flagged is a covered cell the player marked as a mine.
	 *
	 *  - CorrectlyFlagged is a flag shown to be right when the game
	 *    was lost.
	 *
	 *  - ExplodedMine is the mine the player stepped on.
	 *
	 *  - UnflaggedMine is any other mine revealed by a loss.
	 */
)

func opened(n int) CellState {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("mines: invalid neighbour count %d", n))
	}
	return CellState(n)
}

// Valid reports whether s is one of the 14 known states.
func (s CellState) Valid() bool {
	switch s {
	case Unknown, Flagged, CorrectlyFlagged, ExplodedMine, UnflaggedMine:
		return true
	}
	return 0 <= s && s <= 8
}

func (s CellState) Number() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == CorrectlyFlagged:
		return "V"
	case s == ExplodedMine:
		return "X"
	case s == UnflaggedMine:
		return "*"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of a board, row by row.
type Grid []CellState

func NewGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = Unknown
	}
	return g
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
