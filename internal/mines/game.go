package mines

import (
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Phase uint8

const (
	Playing Phase = iota
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

func (p Phase) Terminal() bool {
	return p == Lost || p == Won
}

type Counts struct {
	Flagged        int `json:"flagged"`
	CorrectFlagged int `json:"correct_flagged"`
	TotalMines     int `json:"total_mines"`
}

type RevealedCell struct {
	Point
	Content Content `json:"content"`
}

// RevealResult lists every cell an action turned to Revealed, in the order
// they were opened, followed by any mines uncovered when the game ended.
type RevealResult struct {
	Revealed []RevealedCell `json:"revealed"`
	Phase    Phase          `json:"phase"`
}

type FlagResult struct {
	Visibility Visibility `json:"visibility"`
	Phase      Phase      `json:"phase"`
}

type Game struct {
	params GameParams
	rnd    *rand.Rand
	board  *Board
	phase  Phase

	flagged        int
	correctFlagged int
	revealedSafe   int
	exploded       *Point
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	g := &Game{rnd: r}
	if err := g.NewGame(params); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFixedGame starts a game on a width x height board with mines at exactly
// the given points.
func NewFixedGame(width, height int, mines ...Point) (*Game, error) {
	density := float64(len(mines)) / float64(max(width*height, 1))
	board, err := NewBoard(width, height, density)
	if err != nil {
		return nil, err
	}
	if err := board.PlaceMinesAt(mines...); err != nil {
		return nil, err
	}
	if err := board.ComputeHints(); err != nil {
		return nil, err
	}
	g := &Game{rnd: rand.New(rand.NewPCG(uint64(width), uint64(height)))}
	g.start(GameParams{Width: width, Height: height, Density: density}, board)
	return g, nil
}

// NewGame abandons the current board and starts over. On error the current
// game is left as it was.
func (g *Game) NewGame(params GameParams) error {
	board, err := NewBoard(params.Width, params.Height, params.Density)
	if err != nil {
		return err
	}
	if err := board.PlaceMines(params.MineCount(), g.rnd); err != nil {
		return err
	}
	if err := board.ComputeHints(); err != nil {
		return err
	}
	g.start(params, board)
	return nil
}

func (g *Game) start(params GameParams, board *Board) {
	g.params = params
	g.board = board
	g.phase = Playing
	g.flagged = 0
	g.correctFlagged = 0
	g.revealedSafe = 0
	g.exploded = nil

	Log.WithFields(logrus.Fields{
		"seed":  params.Seed(),
		"mines": board.MineCount(),
	}).Debug("new game")
	if Log.IsLevelEnabled(logrus.TraceLevel) {
		Log.Trace("field\n" + board.String())
	}
}

func (g *Game) Params() GameParams { return g.params }
func (g *Game) Width() int         { return g.board.Width() }
func (g *Game) Height() int        { return g.board.Height() }
func (g *Game) Phase() Phase       { return g.phase }

func (g *Game) Counts() Counts {
	return Counts{
		Flagged:        g.flagged,
		CorrectFlagged: g.correctFlagged,
		TotalMines:     g.board.MineCount(),
	}
}

// Exploded returns the mine that ended the game, if any.
func (g *Game) Exploded() (Point, bool) {
	if g.exploded == nil {
		return Point{}, false
	}
	return *g.exploded, true
}

// Cell returns what the player may know about (x, y). While the game is on,
// unrevealed cells have Unknown content.
func (g *Game) Cell(x, y int) (Cell, error) {
	c, err := g.board.Get(x, y)
	if err != nil {
		return Cell{}, err
	}
	return g.view(c), nil
}

func (g *Game) Grid() Grid {
	grid := make(Grid, len(g.board.cells))
	for i, c := range g.board.cells {
		grid[i] = g.view(c)
	}
	return grid
}

func (g *Game) view(c Cell) Cell {
	if g.phase == Playing && c.Visibility != Revealed {
		c.Content = Unknown
	}
	return c
}

func (g *Game) Reveal(x, y int) (RevealResult, error) {
	if g.phase != Playing {
		return RevealResult{Phase: g.phase}, IgnoredError{NotPlaying}
	}
	if !g.board.InBounds(x, y) {
		return RevealResult{Phase: g.phase}, g.board.outOfBounds(x, y)
	}
	if g.board.at(x, y).Visibility != Hidden {
		return RevealResult{Phase: g.phase}, IgnoredError{NotHidden}
	}

	revealed := g.open(x, y, nil)
	revealed = g.settle(revealed)
	return RevealResult{Revealed: revealed, Phase: g.phase}, nil
}

// open reveals the hidden cell at (x, y). A zero cell floods outwards
// through its neighbors; cells are marked Revealed as they are queued, so
// each one is visited once.
func (g *Game) open(x, y int, revealed []RevealedCell) []RevealedCell {
	c := g.board.at(x, y)
	c.Visibility = Revealed
	revealed = append(revealed, RevealedCell{Point{x, y}, c.Content})

	if c.Content == Mine {
		g.exploded = &Point{x, y}
		return revealed
	}
	g.revealedSafe++
	if c.Content != 0 {
		return revealed
	}

	var todo deque.Deque[Point]
	todo.PushBack(Point{x, y})
	for todo.Len() > 0 {
		p := todo.PopFront()
		for _, n := range g.board.NeighborsOf(p.X, p.Y) {
			nc := g.board.at(n.X, n.Y)
			if nc.Visibility != Hidden || nc.Content == Mine {
				continue
			}
			nc.Visibility = Revealed
			g.revealedSafe++
			revealed = append(revealed, RevealedCell{n, nc.Content})
			if nc.Content == 0 {
				todo.PushBack(n)
			}
		}
	}
	return revealed
}

func (g *Game) cleared() bool {
	return g.revealedSafe == g.board.SafeCount()
}

// settle moves the game to a terminal phase if the last reveal ended it.
func (g *Game) settle(revealed []RevealedCell) []RevealedCell {
	switch {
	case g.exploded != nil:
		return g.finish(Lost, revealed)
	case g.cleared():
		return g.finish(Won, revealed)
	}
	return revealed
}

// finish ends the game and uncovers every mine that is neither revealed nor
// flagged.
func (g *Game) finish(phase Phase, revealed []RevealedCell) []RevealedCell {
	g.phase = phase
	for i := range g.board.cells {
		c := &g.board.cells[i]
		if c.Content == Mine && c.Visibility == Hidden {
			c.Visibility = Revealed
			revealed = append(revealed, RevealedCell{
				Point{i % g.board.width, i / g.board.width}, Mine,
			})
		}
	}
	Log.WithFields(logrus.Fields{
		"phase":           phase,
		"flagged":         g.flagged,
		"correct_flagged": g.correctFlagged,
		"revealed_safe":   g.revealedSafe,
	}).Debug("game over")
	return revealed
}

func (g *Game) ToggleFlag(x, y int) (FlagResult, error) {
	if g.phase != Playing {
		return FlagResult{Phase: g.phase}, IgnoredError{NotPlaying}
	}
	if !g.board.InBounds(x, y) {
		return FlagResult{Phase: g.phase}, g.board.outOfBounds(x, y)
	}
	c := g.board.at(x, y)

	delta := 0
	switch c.Visibility {
	case Revealed:
		return FlagResult{Visibility: Revealed, Phase: g.phase}, IgnoredError{AlreadyRevealed}
	case Hidden:
		c.Visibility = Flagged
		delta = 1
	case Flagged:
		c.Visibility = Hidden
		delta = -1
	}
	g.flagged += delta
	if c.Content == Mine {
		g.correctFlagged += delta
	}

	mines := g.board.MineCount()
	if mines > 0 && g.correctFlagged == mines && g.flagged == mines {
		g.finish(Won, nil)
	}
	return FlagResult{Visibility: c.Visibility, Phase: g.phase}, nil
}

// Chord opens every hidden neighbor of a revealed hint once the player has
// placed as many flags around it as the hint says.
func (g *Game) Chord(x, y int) (RevealResult, error) {
	if g.phase != Playing {
		return RevealResult{Phase: g.phase}, IgnoredError{NotPlaying}
	}
	if !g.board.InBounds(x, y) {
		return RevealResult{Phase: g.phase}, g.board.outOfBounds(x, y)
	}
	c := g.board.at(x, y)
	if c.Visibility != Revealed || c.Content <= 0 {
		return RevealResult{Phase: g.phase}, IgnoredError{NotChordable}
	}

	var flags int
	var hidden []Point
	for _, n := range g.board.NeighborsOf(x, y) {
		switch g.board.at(n.X, n.Y).Visibility {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flags != int(c.Content) || len(hidden) == 0 {
		return RevealResult{Phase: g.phase}, IgnoredError{NotChordable}
	}

	var revealed []RevealedCell
	for _, n := range hidden {
		if g.board.at(n.X, n.Y).Visibility != Hidden {
			continue // opened by an earlier cascade
		}
		revealed = g.open(n.X, n.Y, revealed)
		if g.exploded != nil || g.cleared() {
			break
		}
	}
	revealed = g.settle(revealed)
	return RevealResult{Revealed: revealed, Phase: g.phase}, nil
}

// Forfeit gives the game up. Remaining mines are uncovered as on a loss, but
// no cell is marked as exploded.
func (g *Game) Forfeit() (RevealResult, error) {
	if g.phase != Playing {
		return RevealResult{Phase: g.phase}, IgnoredError{NotPlaying}
	}
	revealed := g.finish(Lost, nil)
	return RevealResult{Revealed: revealed, Phase: g.phase}, nil
}
