package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/logging"
	"github.com/vovakirdan/tui-invaders/internal/platform/headless"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagRuns   int
	flagFrames int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot sessions headlessly",
	Long: `Plays sessions with a simple autopilot on a virtual clock and prints
the outcome of each one plus the best runs. Run i uses seed+i, so the
same flags always print the same table.

Examples:
  invaders sim
  invaders sim --runs 50 --seed 1
  invaders sim --frames 5000 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions to play")
	simCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Frame limit per session")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, "sim", level)
	if flagLogFile != "" {
		var closeLog func() error
		logger, closeLog, err = logging.OpenFile(flagLogFile, "sim", level)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer board.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-5s  %-7s  %s\n", "Run", "Outcome", "Points", "Kills", "Lives", "Time", "Hash")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-5s  %-7s  %s\n", "---", "-------", "------", "-----", "-----", "----", "----")

	for i := range flagRuns {
		res, err := headless.Run(ctx, headless.RunConfig{
			Config:    cfg,
			Seed:      seed + int64(i),
			MaxFrames: flagFrames,
			Logger:    logger,
		})
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "completed", i)
			break
		}
		if err != nil {
			return err
		}

		fmt.Printf("  %-4d  %-10s  %-6d  %-5d  %-5d  %-7s  %016x\n",
			i+1, res.Outcome, res.Score, res.Kills, res.Lives, res.Elapsed.Round(time.Second), res.Hash)

		if res.Outcome == headless.OutcomeUnfinished {
			continue
		}
		if _, err := board.RecordRun(storage.RunEntry{
			RunID:     res.RunID,
			Outcome:   res.Outcome,
			Score:     res.Score,
			Kills:     res.Kills,
			Ticks:     int64(res.Ticks),
			ElapsedMS: res.Elapsed.Milliseconds(),
		}); err != nil {
			return err
		}
	}

	return printSummary(board, seed)
}

func printSummary(board *storage.Board, seed int64) error {
	stats, err := board.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Seed %d: %d finished, %d won, best %d\n", seed, stats.Runs, stats.Wins, stats.Best)

	top, err := board.TopRuns(3)
	if err != nil {
		return err
	}
	for i, e := range top {
		fmt.Printf("  #%d  %-5s  %d points in %s\n", i+1, e.Outcome, e.Score, time.Duration(e.ElapsedMS)*time.Millisecond)
	}
	return nil
}
