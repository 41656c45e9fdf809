package main

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type newGame struct {
	Width   int     `schema:"width"`
	Height  int     `schema:"height"`
	Density float64 `schema:"density"`
}

// decodeNewGame reads "key=value" arguments on top of the current board, so
// "n density=0.2" keeps the size and changes only the density.
func decodeNewGame(args []string, current mines.GameParams) (mines.GameParams, error) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return mines.GameParams{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		src[key] = append(src[key], value)
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	dto := newGame(current)
	if err := dec.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}

	params := mines.GameParams(dto)
	return params, params.Validate()
}
