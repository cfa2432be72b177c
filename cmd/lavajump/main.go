// lavajump is an infinite jumper for the terminal: bounce from platform to
// platform and stay ahead of the rising lava.
//
// Usage:
//
//	lavajump                 - Play (same as "lavajump play")
//	lavajump play            - Play in the terminal
//	lavajump bench           - Run autopilot sessions headless and print stats
//	lavajump tiers           - List difficulty tiers from the loaded config
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty tier (default from config)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lavajump",
	Short: "Lava Jump - an infinite jumper in your terminal",
	Long: `Lava Jump is a terminal infinite jumper. Your character bounces on its
own; steer it from platform to platform, avoid the monsters and climb
faster than the lava rises.

Available commands:
  play     - Play in the terminal (default)
  bench    - Run autopilot sessions without a terminal
  tiers    - Show difficulty tiers

Examples:
  lavajump
  lavajump play --difficulty hard
  lavajump bench --runs 20 --seed 7
  lavajump tiers --yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty tier (easy, normal, hard or a custom tier)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(tiersCmd)
}
