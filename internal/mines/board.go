package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board is the cell grid of a single game. It knows where the mines are
// and what every hint says, but nothing about the state of play.
type Board struct {
	width, height int
	mineCount     int
	placed        bool
	cells         []Cell // row-major, y*width + x
}

func NewBoard(width, height int, density float64) (*Board, error) {
	params := GameParams{Width: width, Height: height, Density: density}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	return b, nil
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) at(x, y int) *Cell {
	return &b.cells[y*b.width+x]
}

func (b *Board) outOfBounds(x, y int) error {
	return OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
}

func (b *Board) checkPlacement(count int) error {
	if b.placed {
		return ConfigError{"mines", b.mineCount, "already placed"}
	}
	if count < 0 || count >= len(b.cells) {
		return ConfigError{
			"mine count", count,
			fmt.Sprintf("must be in [0, %d)", len(b.cells)),
		}
	}
	return nil
}

// PlaceMines marks count distinct random cells as mines. Positions are drawn
// uniformly and redrawn on collision.
func (b *Board) PlaceMines(count int, r *rand.Rand) error {
	if err := b.checkPlacement(count); err != nil {
		return err
	}
	for placed := 0; placed < count; {
		c := b.at(r.IntN(b.width), r.IntN(b.height))
		if c.Content == Mine {
			continue
		}
		c.Content = Mine
		placed++
	}
	b.mineCount = count
	b.placed = true
	return nil
}

// PlaceMinesAt marks exactly the given cells as mines.
func (b *Board) PlaceMinesAt(points ...Point) error {
	if err := b.checkPlacement(len(points)); err != nil {
		return err
	}
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if !b.InBounds(p.X, p.Y) {
			return ConfigError{"mine", p, "outside of the board"}
		}
		if _, ok := seen[p]; ok {
			return ConfigError{"mine", p, "duplicate position"}
		}
		seen[p] = struct{}{}
	}
	for p := range seen {
		b.at(p.X, p.Y).Content = Mine
	}
	b.mineCount = len(points)
	b.placed = true
	return nil
}

// ComputeHints sets every non-mine cell to the number of its mined
// neighbors. Calling it again yields the same counts.
func (b *Board) ComputeHints() error {
	if !b.placed {
		return ConfigError{"mines", 0, "hints computed before placement"}
	}
	for y := range b.height {
		for x := range b.width {
			c := b.at(x, y)
			if c.Content == Mine {
				continue
			}
			var n Content
			for _, p := range b.NeighborsOf(x, y) {
				if b.at(p.X, p.Y).Content == Mine {
					n++
				}
			}
			c.Content = n
		}
	}
	return nil
}

// NeighborsOf lists the cells around (x, y) clipped to the board, row by
// row from the top left. It returns nil for a point outside the board.
func (b *Board) NeighborsOf(x, y int) []Point {
	if !b.InBounds(x, y) {
		return nil
	}
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) {
				ns = append(ns, Point{x + dx, y + dy})
			}
		}
	}
	return ns
}

func (b *Board) Get(x, y int) (Cell, error) {
	if !b.InBounds(x, y) {
		return Cell{}, b.outOfBounds(x, y)
	}
	return *b.at(x, y), nil
}

func (b *Board) SetVisibility(x, y int, v Visibility) error {
	if !b.InBounds(x, y) {
		return b.outOfBounds(x, y)
	}
	b.at(x, y).Visibility = v
	return nil
}

func (b *Board) Mines() []Point {
	mines := make([]Point, 0, b.mineCount)
	for i, c := range b.cells {
		if c.Content == Mine {
			mines = append(mines, Point{i % b.width, i / b.width})
		}
	}
	return mines
}

func (b *Board) SafeCount() int {
	return len(b.cells) - b.mineCount
}

// String dumps the full layout with every cell shown, for debugging.
func (b *Board) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%dx%d, %d mines\n", b.width, b.height, b.mineCount)
	for y := range b.height {
		for x := range b.width {
			s.WriteString(b.at(x, y).Content.String())
			if x < b.width-1 {
				s.WriteByte(' ')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
