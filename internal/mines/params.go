package mines

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxCells bounds the size of custom boards.
const MaxCells = 1 << 20

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Size() int {
	return p.Width * p.Height
}

// Validate reports ErrInvalidConfiguration unless the dimensions are positive
// and at least one cell is left free of mines.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf(
			"%w: dimensions must be positive (width = %d, height = %d)",
			ErrInvalidConfiguration, p.Width, p.Height,
		)
	}
	if p.Width > MaxCells || p.Height > MaxCells || p.Size() > MaxCells {
		return fmt.Errorf(
			"%w: board of %dx%d exceeds %d cells",
			ErrInvalidConfiguration, p.Width, p.Height, MaxCells,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size() {
		return fmt.Errorf(
			"%w: mine count must be in [0, %d) (mine_count = %d)",
			ErrInvalidConfiguration, p.Size(), p.MineCount,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func (p GameParams) Fields() logrus.Fields {
	return logrus.Fields{
		"width":      p.Width,
		"height":     p.Height,
		"mine_count": p.MineCount,
	}
}

// ParseSeed reads a "W:H:M" seed. The result is validated.
func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(strings.TrimSpace(seed), ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`%w: invalid game params seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidConfiguration, seed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
