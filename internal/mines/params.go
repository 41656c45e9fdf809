package mines

import (
	"math"
	"strconv"
	"strings"
)

const DefaultDensity = 0.15

type GameParams struct {
	Width, Height int
	Density       float64
}

func (p GameParams) Unpack() (w int, h int, d float64) {
	return p.Width, p.Height, p.Density
}

func (p GameParams) MineCount() int {
	return int(math.Floor(float64(p.Width*p.Height) * p.Density))
}

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return ConfigError{"width", p.Width, "must be positive"}
	case p.Height <= 0:
		return ConfigError{"height", p.Height, "must be positive"}
	case p.Width > math.MaxInt32/p.Height:
		return ConfigError{"width", p.Width, "board is too large"}
	case math.IsNaN(p.Density) || p.Density < 0 || p.Density >= 1:
		return ConfigError{"density", p.Density, "must be in [0, 1)"}
	case p.MineCount() >= p.Width*p.Height:
		return ConfigError{"density", p.Density, "leaves no safe cells"}
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Seed formats the params as "width:height:density".
func (p GameParams) Seed() string {
	return strconv.Itoa(p.Width) + ":" +
		strconv.Itoa(p.Height) + ":" +
		strconv.FormatFloat(p.Density, 'g', -1, 64)
}

func ParseSeed(seed string) (*GameParams, error) {
	parts := strings.Split(seed, ":")
	if len(parts) != 3 {
		return nil, ConfigError{"seed", seed, "expected width:height:density"}
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, ConfigError{"width", parts[0], err.Error()}
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, ConfigError{"height", parts[1], err.Error()}
	}
	density, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, ConfigError{"density", parts[2], err.Error()}
	}
	p := &GameParams{Width: width, Height: height, Density: density}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
