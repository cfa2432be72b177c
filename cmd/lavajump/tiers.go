package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavajump/internal/config"
)

var (
	flagTiersYAML     bool
	flagTiersDefaults bool
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show difficulty tiers",
	Long: `List the difficulty tiers of the loaded configuration, easiest first.

With --yaml the whole effective configuration is printed instead, which is
a good starting point for a custom --config file. --defaults prints the
built-in configuration document, ignoring any config file.

Examples:
  lavajump tiers
  lavajump tiers --yaml > ~/.lavajump/config.yaml
  lavajump tiers --defaults`,
	Args: cobra.NoArgs,
	Run:  runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&flagTiersYAML, "yaml", false, "Print the effective configuration as YAML")
	tiersCmd.Flags().BoolVar(&flagTiersDefaults, "defaults", false, "Print the built-in configuration as YAML")
	tiersCmd.MarkFlagsMutuallyExclusive("yaml", "defaults")
}

func runTiers(_ *cobra.Command, _ []string) {
	if flagTiersDefaults {
		writeDefaults(os.Stdout)
		return
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagTiersYAML {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	printTiers(os.Stdout, cfg)
}

// writeDefaults writes the built-in configuration document.
func writeDefaults(w io.Writer) {
	w.Write(config.DefaultYAML())
}

// printTiers writes a table of tiers; the default one is starred.
func printTiers(w io.Writer, cfg config.Config) {
	names := cfg.TierNames()
	if len(names) == 0 {
		fmt.Fprintln(w, "No difficulty tiers configured.")
		return
	}

	defaultPreset, _, _ := cfg.Tier(cfg.DefaultDifficulty)

	maxNameLen := 4 // "Tier" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Fprintf(w, "  %-*s  %10s  %7s  %8s\n", maxNameLen+2, "Tier", "Lava/tick", "Enemies", "Platform")
	fmt.Fprintf(w, "  %-*s  %10s  %7s  %8s\n", maxNameLen+2, "----", "---------", "-------", "--------")

	for _, name := range names {
		tier := cfg.Difficulty[name]
		label := name
		if name == string(defaultPreset) {
			label += " *"
		}
		fmt.Fprintf(w, "  %-*s  %10.2f  %6.0f%%  %8.0f\n",
			maxNameLen+2, label, tier.LavaSpeed, tier.EnemyFrequency*100, tier.PlatformSize)
	}
}
