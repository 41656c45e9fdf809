package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Content int8

const (
	Unknown Content = -2 // not yet visible to the player
	Mine    Content = -1
	// 0-8 for empty with given number of mined neighbors
)

func (c Content) String() string {
	switch c {
	case Unknown:
		return "-"
	case Mine:
		return "*"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

type Visibility uint8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// Cell is a copy of one grid position. Content is fixed once the board is
// set up; only Visibility changes during play.
type Cell struct {
	Content    Content    `json:"content"`
	Visibility Visibility `json:"visibility"`
}

func (c Cell) String() string {
	switch c.Visibility {
	case Flagged:
		return "F"
	case Revealed:
		return c.Content.String()
	default:
		return Unknown.String()
	}
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a row-major snapshot of a board.
type Grid []Cell

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
