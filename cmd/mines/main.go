package main

import (
	"context"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// setupLogging keeps log output off the game screen: it goes to stderr only
// in debug mode, and to a rotated file when one is configured.
func setupLogging(cfg *config.Logging, debug bool, stderr io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("unable to parse MINES_LOG_LEVEL: %w", err)
		}
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(io.Discard)
	if debug {
		log.SetOutput(stderr)
	}

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

type flags struct {
	width   int
	height  int
	density float64
	params  string
	seed    uint64
	debug   bool
}

// gameParams merges the env defaults with whatever the player passed on the
// command line. A --params seed wins over the single-value flags.
func (f flags) gameParams(cmd *cobra.Command, defaults *config.Game) (mines.GameParams, error) {
	if f.params != "" {
		p, err := mines.ParseSeed(f.params)
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	params := defaults.Params()
	if cmd.Flags().Changed("width") {
		params.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		params.Height = f.height
	}
	if cmd.Flags().Changed("density") {
		params.Density = f.density
	}
	return params, params.Validate()
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "mines",
		Short:        "Clear a minefield in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			loggingCfg, err := config.NewLogging()
			if err != nil {
				return err
			}
			log, err := setupLogging(loggingCfg, f.debug || config.Development(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			mines.Log = log

			defaults, err := config.NewGame()
			if err != nil {
				return err
			}
			params, err := f.gameParams(cmd, defaults)
			if err != nil {
				return err
			}

			game, err := mines.NewGame(params, createRand(f.seed))
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"params": params.Seed(),
				"seed":   f.seed,
			}).Info("starting up")

			app := &application{
				logger: log,
				game:   game,
				out:    cmd.OutOrStdout(),
			}
			return app.run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().IntVar(&f.width, "width", config.DefaultWidth, "board width (MINES_WIDTH)")
	cmd.Flags().IntVar(&f.height, "height", config.DefaultHeight, "board height (MINES_HEIGHT)")
	cmd.Flags().Float64Var(&f.density, "density", mines.DefaultDensity, "fraction of cells holding a mine (MINES_DENSITY)")
	cmd.Flags().StringVar(&f.params, "params", "", "board as width:height:density, overrides the other board flags")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "log to stderr at debug level")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
