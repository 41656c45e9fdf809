package mines

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.TraceLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func naiveNeighborMines(b *Board, x, y int) Content {
	var n Content
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			if (xx != x || yy != y) && b.InBounds(xx, yy) && b.at(xx, yy).Content == Mine {
				n++
			}
		}
	}
	return n
}

func TestNewBoardValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		width   int
		height  int
		density float64
		ok      bool
	}{
		{name: "9x9", width: 9, height: 9, density: 0.15, ok: true},
		{name: "1x1 empty", width: 1, height: 1, density: 0, ok: true},
		{name: "zero width", width: 0, height: 9, density: 0.15},
		{name: "negative height", width: 9, height: -1, density: 0.15},
		{name: "density one", width: 9, height: 9, density: 1},
		{name: "negative density", width: 9, height: 9, density: -0.1},
		{name: "NaN density", width: 9, height: 9, density: math.NaN()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(test.width, test.height, test.density)
			if test.ok {
				require.NoError(t, err)
				assert.Equal(t, test.width, b.Width())
				assert.Equal(t, test.height, b.Height())
				for _, c := range b.cells {
					assert.Equal(t, Cell{Content: 0, Visibility: Hidden}, c)
				}
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			var ce ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestPlaceMinesCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "3x3(0.15)", params: GameParams{3, 3, 0.15}},
		{name: "9x9(0.15)", params: GameParams{9, 9, 0.15}},
		{name: "16x16(0.15)", params: GameParams{16, 16, 0.15}},
		{name: "30x16(0.2)", params: GameParams{30, 16, 0.2}},
		{name: "10x10(0.99)", params: GameParams{10, 10, 0.99}},
		{name: "7x5(0)", params: GameParams{7, 5, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			w, h, d := test.params.Unpack()
			b, err := NewBoard(w, h, d)
			require.NoError(t, err)
			require.NoError(t, b.PlaceMines(test.params.MineCount(), r))

			want := int(math.Floor(float64(w*h) * d))
			assert.Equal(t, want, b.MineCount())
			assert.Len(t, b.Mines(), want)
			assert.Equal(t, w*h-want, b.SafeCount())
		})
	}
}

func TestPlaceMinesRejectsBadCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	b, err := NewBoard(3, 3, 0)
	require.NoError(t, err)

	assert.ErrorIs(t, b.PlaceMines(9, r), ErrInvalidConfiguration)
	assert.ErrorIs(t, b.PlaceMines(-1, r), ErrInvalidConfiguration)
	assert.Empty(t, b.Mines())

	require.NoError(t, b.PlaceMines(2, r))
	assert.ErrorIs(t, b.PlaceMines(2, r), ErrInvalidConfiguration, "second placement")
	assert.Equal(t, 2, b.MineCount())
}

func TestPlaceMinesAt(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		ok     bool
	}{
		{name: "corner", points: []Point{{2, 2}}, ok: true},
		{name: "two", points: []Point{{0, 0}, {1, 2}}, ok: true},
		{name: "duplicate", points: []Point{{1, 1}, {1, 1}}},
		{name: "outside", points: []Point{{3, 0}}},
		{name: "negative", points: []Point{{0, -1}}},
		{name: "full", points: []Point{
			{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(3, 3, 0)
			require.NoError(t, err)
			err = b.PlaceMinesAt(test.points...)
			if !test.ok {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				assert.Empty(t, b.Mines(), "failed placement must not leave mines behind")
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, test.points, b.Mines())
		})
	}
}

func TestComputeHints(t *testing.T) {
	t.Parallel()

	for seed := range uint64(20) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		b, err := NewBoard(16, 12, 0.2)
		require.NoError(t, err)
		require.NoError(t, b.PlaceMines(GameParams{16, 12, 0.2}.MineCount(), r))
		require.NoError(t, b.ComputeHints())

		for y := range b.Height() {
			for x := range b.Width() {
				c, err := b.Get(x, y)
				require.NoError(t, err)
				if c.Content == Mine {
					continue
				}
				assert.Equal(t, naiveNeighborMines(b, x, y), c.Content, "seed %d @ %d:%d", seed, x, y)
			}
		}

		before := b.String()
		require.NoError(t, b.ComputeHints())
		assert.Equal(t, before, b.String(), "hints must be idempotent")
	}
}

func TestComputeHintsBeforePlacement(t *testing.T) {
	b, err := NewBoard(3, 3, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, b.ComputeHints(), ErrInvalidConfiguration)
}

func TestNeighborsOf(t *testing.T) {
	b, err := NewBoard(4, 3, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		x, y  int
		count int
	}{
		{name: "top left", x: 0, y: 0, count: 3},
		{name: "bottom right", x: 3, y: 2, count: 3},
		{name: "top edge", x: 1, y: 0, count: 5},
		{name: "left edge", x: 0, y: 1, count: 5},
		{name: "interior", x: 1, y: 1, count: 8},
		{name: "outside", x: 4, y: 0, count: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ns := b.NeighborsOf(test.x, test.y)
			assert.Len(t, ns, test.count)
			for _, n := range ns {
				assert.True(t, b.InBounds(n.X, n.Y))
				assert.NotEqual(t, Point{test.x, test.y}, n)
				assert.LessOrEqual(t, absDiff(n.X, test.x), 1)
				assert.LessOrEqual(t, absDiff(n.Y, test.y), 1)
			}
		})
	}

	assert.Equal(t,
		[]Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		b.NeighborsOf(1, 1),
		"neighbors come in row-major order",
	)
}

func TestNeighborsOfCornerOnTallBoard(t *testing.T) {
	b, err := NewBoard(1, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 1}}, b.NeighborsOf(0, 0))
	assert.Equal(t, []Point{{0, 1}, {0, 3}}, b.NeighborsOf(0, 2))
}

func TestBoardBounds(t *testing.T) {
	b, err := NewBoard(3, 2, 0)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err := b.Get(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "get %s", p)

		err = b.SetVisibility(p.X, p.Y, Flagged)
		var oob OutOfBoundsError
		if assert.ErrorAs(t, err, &oob, "set %s", p) {
			assert.Equal(t, OutOfBoundsError{p.X, p.Y, 3, 2}, oob)
		}
	}

	require.NoError(t, b.SetVisibility(2, 1, Flagged))
	c, err := b.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Flagged, c.Visibility)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
