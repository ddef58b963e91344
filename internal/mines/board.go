package mines

import "math/rand/v2"

type Cell struct {
	Mine, Flagged, Revealed bool
}

// Board holds the mine layout and the per-cell flags. Cells are stored row
// by row, cell (x, y) at index y*Width+x.
type Board struct {
	GameParams
	cells []Cell
}

func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newBoard(params, r), nil
}

func newBoard(params GameParams, r *rand.Rand) *Board {
	b := &Board{
		GameParams: params,
		cells:      make([]Cell, params.Size()),
	}
	b.PlaceMines(r)
	return b
}

// PlaceMines replaces the mine layout with MineCount distinct cells drawn
// uniformly at random.
func (b *Board) PlaceMines(r *rand.Rand) {
	picked := sample(len(b.cells), b.MineCount, r)
	for i := range b.cells {
		b.cells[i].Mine = false
	}
	for _, i := range picked {
		b.cells[i].Mine = true
	}
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

func (b *Board) at(x, y int) *Cell {
	return &b.cells[b.index(x, y)]
}

func (b *Board) Cell(x, y int) Cell {
	return *b.at(x, y)
}

// Mines returns the mine positions in row-major order.
func (b *Board) Mines() []Point {
	var ps []Point
	for i, c := range b.cells {
		if c.Mine {
			ps = append(ps, Point{i % b.Width, i / b.Width})
		}
	}
	return ps
}

func (b *Board) Neighbors(x, y int) []Point {
	ps := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.PointInBounds(x+dx, y+dy) {
				ps = append(ps, Point{x + dx, y + dy})
			}
		}
	}
	return ps
}

func (b *Board) AdjacentMines(x, y int) int {
	n := 0
	for _, p := range b.Neighbors(x, y) {
		if b.at(p.X, p.Y).Mine {
			n++
		}
	}
	return n
}

// FloodRegion returns the cells a reveal at (x, y) opens: the covered
// 8-connected region of zero cells grown from the seed, plus its numbered
// border. Open cells and mines are never part of the region. The board is
// not modified.
func (b *Board) FloodRegion(x, y int) []Point {
	visited := make([]bool, len(b.cells))
	visited[b.index(x, y)] = true
	queue := []Point{{x, y}}

	var region []Point
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		c := b.at(p.X, p.Y)
		if c.Revealed || c.Mine {
			continue
		}
		region = append(region, p)

		if b.AdjacentMines(p.X, p.Y) != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.X, p.Y) {
			if i := b.index(n.X, n.Y); !visited[i] {
				visited[i] = true
				queue = append(queue, n)
			}
		}
	}
	return region
}
