package config

import (
	"fmt"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	DefaultWidth  = 9
	DefaultHeight = 9
)

type Game struct {
	Width   int
	Height  int
	Density float64
}

// NewGame reads the board used when the player does not pick one.
func NewGame() (*Game, error) {
	width, err := lookupInt("MINES_WIDTH", DefaultWidth)
	if err != nil {
		return nil, err
	}

	height, err := lookupInt("MINES_HEIGHT", DefaultHeight)
	if err != nil {
		return nil, err
	}

	density, err := lookupFloat("MINES_DENSITY", mines.DefaultDensity)
	if err != nil {
		return nil, err
	}

	game := &Game{
		Width:   width,
		Height:  height,
		Density: density,
	}

	if err := game.Params().Validate(); err != nil {
		return nil, fmt.Errorf("bad game defaults: %w", err)
	}

	return game, nil
}

func (g Game) Params() mines.GameParams {
	return mines.GameParams{
		Width:   g.Width,
		Height:  g.Height,
		Density: g.Density,
	}
}
