package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

func face(o mines.Outcome) string {
	switch o {
	case mines.Won:
		return "B)"
	case mines.Lost:
		return ":("
	default:
		return ":)"
	}
}

// Render draws the status line and the player's grid with coordinates.
func Render(w io.Writer, e *mines.Engine) error {
	width, height, _ := e.Params().Unpack()
	grid := e.Grid()
	cw := len(strconv.Itoa(max(width, height) - 1))

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", face(e.Outcome()), e.Flags())

	b.WriteString(strings.Repeat(" ", cw))
	for x := range width {
		fmt.Fprintf(&b, " %*d", cw, x)
	}
	b.WriteByte('\n')

	for y := range height {
		fmt.Fprintf(&b, "%*d", cw, y)
		for x := range width {
			fmt.Fprintf(&b, " %*s", cw, grid[y*width+x])
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
