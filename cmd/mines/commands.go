package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

type command string

const (
	cmdRedraw  command = "g"
	cmdOpen    command = "o"
	cmdFlag    command = "f"
	cmdChord   command = "c"
	cmdForfeit command = "r" // =)
	cmdNew     command = "n"
	cmdHelp    command = "h"
	cmdQuit    command = "q"
)

const usage = `commands:
  o X Y        open a cell
  f X Y        flag or unflag a cell
  c X Y        open the neighbors of a satisfied number
  r            give up
  n [k=v ...]  new game, keys: width height density
  g            redraw
  h            help
  q            quit
`

var errQuit = errors.New("quit")

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = errors.New("expected two coordinates")
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func noArgs(args []string) error {
	if len(args) != 0 {
		return errors.New("command takes no arguments")
	}
	return nil
}

// execute runs one line of input against the game. Errors returned here are
// the player's: bad syntax, coordinates off the board, or actions the game
// ignored.
func (app *application) execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := command(tokens[0]), tokens[1:]

	app.logger.WithFields(logrus.Fields{
		"command": string(cmd),
		"args":    args,
	}).Debug("execute")

	switch cmd {
	case cmdRedraw:
		return noArgs(args)
	case cmdOpen, cmdChord:
		x, y, err := parseXY(args)
		if err != nil {
			return err
		}
		var res mines.RevealResult
		if cmd == cmdOpen {
			res, err = app.game.Reveal(x, y)
		} else {
			res, err = app.game.Chord(x, y)
		}
		if err == nil {
			app.logger.WithFields(logrus.Fields{
				"revealed": len(res.Revealed),
				"phase":    res.Phase,
			}).Debug("revealed cells")
		}
		return err
	case cmdFlag:
		x, y, err := parseXY(args)
		if err != nil {
			return err
		}
		_, err = app.game.ToggleFlag(x, y)
		return err
	case cmdForfeit:
		if err := noArgs(args); err != nil {
			return err
		}
		_, err := app.game.Forfeit()
		return err
	case cmdNew:
		params, err := decodeNewGame(args, app.game.Params())
		if err != nil {
			return err
		}
		return app.game.NewGame(params)
	case cmdHelp:
		fmt.Fprint(app.out, usage)
		return nil
	case cmdQuit:
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try h", cmd)
	}
}
