// snake is a terminal Snake game.
//
// Usage:
//
//	snake               - Play (no flags needed)
//	snake controls      - Show key bindings
//
// Flags:
//
//	--fps <rate>        - Tick rate (default from config, 15)
//	--seed <value>      - RNG seed for reproducible food placement
//	--config <path>     - Path to a YAML config file
//	--log-file <path>   - Write debug logs to this file
//	--log-level <lvl>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
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
	Use:   "snake",
	Short: "Snake - steer a growing snake around your terminal",
	Long: `Snake is a terminal game: eat the food, grow longer, and don't bite
yourself. The board wraps around at every edge.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --fps 20
  snake --config ./my-snake.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(controlsCmd)
}
