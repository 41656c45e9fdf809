package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

type application struct {
	logger *logrus.Logger
	game   *mines.Game
	out    io.Writer
}

func scanLines(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

// run plays until the input ends, the player quits, or ctx is done.
func (app *application) run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go scanLines(in, lines)

	app.render()
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := app.handle(line); done {
				return nil
			}
		}
	}
}

// handle executes one line and redraws. It reports whether the session is
// over.
func (app *application) handle(line string) bool {
	before := app.game.Phase()

	var ignored mines.IgnoredError
	err := app.execute(line)
	switch {
	case errors.Is(err, errQuit):
		return true
	case errors.As(err, &ignored):
		fmt.Fprintf(app.out, "ignored: %s\n", ignored.Reason)
	case errors.Is(err, mines.ErrOutOfBounds):
		fmt.Fprintln(app.out, "that cell is not on the board")
	case err != nil:
		app.logger.WithError(err).Debug("bad input")
		fmt.Fprintf(app.out, "error: %s\n", err)
	}

	app.render()
	if after := app.game.Phase(); after != before && after.Terminal() {
		fmt.Fprintln(app.out, endMessage(app.game))
		fmt.Fprintln(app.out, "n starts a new game, q quits")
		app.logger.WithField("phase", after).Info("game over")
	}
	return false
}
