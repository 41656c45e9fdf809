package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

func (app *application) render() {
	render(app.out, app.game)
}

func render(w io.Writer, game *mines.Game) {
	var b strings.Builder

	b.WriteString("   ")
	for x := range game.Width() {
		fmt.Fprintf(&b, "%3d", x)
	}
	b.WriteByte('\n')

	grid := game.Grid()
	exploded, hasExploded := game.Exploded()
	for y := range game.Height() {
		fmt.Fprintf(&b, "%3d", y)
		for x := range game.Width() {
			s := grid[y*game.Width()+x].String()
			if hasExploded && exploded == (mines.Point{X: x, Y: y}) {
				s = "X"
			}
			fmt.Fprintf(&b, "%3s", s)
		}
		b.WriteByte('\n')
	}

	counts := game.Counts()
	fmt.Fprintf(&b, "flags %d/%d  %s\n", counts.Flagged, counts.TotalMines, game.Phase())

	io.WriteString(w, b.String())
}

func endMessage(game *mines.Game) string {
	counts := game.Counts()
	switch game.Phase() {
	case mines.Won:
		if counts.TotalMines > 0 && counts.CorrectFlagged == counts.TotalMines &&
			counts.Flagged == counts.TotalMines {
			return "You flagged all mines."
		}
		return "You cleared the field."
	case mines.Lost:
		if _, ok := game.Exploded(); ok {
			return "You exploded in little pieces."
		}
		return "You gave up."
	default:
		return "The game ended without a good reason."
	}
}
