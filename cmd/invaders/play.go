package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/logging"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game on its menu.

Controls:
  Left/A, Right/D - Move
  Space           - Fire
  Esc/P           - Pause
  Enter           - Start (menu)
  O               - Options (menu)
  R               - Resume (paused)
  B               - Back to menu (paused)
  C               - Play again (finished)
  Q/Ctrl+C        - Quit

The terminal belongs to the game, so logs only go to --log-file.

Examples:
  invaders play
  invaders play --seed 7
  invaders play --config ./my-invaders.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := logging.OpenFile(flagLogFile, "invaders", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = cfg.Timing.TickRate
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	runs, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run board unavailable", "err", err)
	} else {
		defer runs.Close()
	}

	if err := tui.RunGame(cfg, rt, runs, logger); err != nil {
		logger.Error("terminal program failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
