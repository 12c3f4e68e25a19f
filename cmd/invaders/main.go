// invaders is a terminal space shooter built on a deterministic
// simulation core.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders sim             - Run autopilot sessions headlessly
//	invaders config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom config YAML
//	--log-file <path>   - Append logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the bottom of your terminal",
	Long: `Invaders is a terminal space shooter. A swaying formation fires down at
your ship while you move along the bottom and shoot back.

Available commands:
  play     - Play in the terminal
  sim      - Run autopilot sessions and print a summary
  config   - Print the default configuration

Examples:
  invaders play
  invaders play --seed 42 --log-file /tmp/invaders.log
  invaders sim --runs 20 --frames 20000
  invaders config > ~/.invaders/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the tuning and applies the --fps override.
func loadConfig() (config.InvadersConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.invaders/config.yaml or configs/invaders.yaml and edit it; omitted keys
keep their defaults.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
