package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavajump/internal/config"
	"github.com/vovakirdan/lavajump/internal/core"
	"github.com/vovakirdan/lavajump/internal/games/jumper"
	"github.com/vovakirdan/lavajump/internal/storage"
)

// causeTimeout marks bench runs stopped by --max-ticks.
const causeTimeout = "timeout"

var (
	flagBenchRuns     int
	flagBenchMaxTicks uint64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run autopilot sessions without a terminal",
	Long: `Play sessions with the built-in autopilot for every difficulty tier
(or only --difficulty) and print a summary of the runs.

The same --seed always produces the same results.

Examples:
  lavajump bench
  lavajump bench --runs 50 --seed 7
  lavajump bench --difficulty hard --max-ticks 20000`,
	Args: cobra.NoArgs,
	Run:  runBenchCmd,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchRuns, "runs", 10, "Sessions per difficulty")
	benchCmd.Flags().Uint64Var(&flagBenchMaxTicks, "max-ticks", 36000, "Stop a session after this many ticks")
}

// benchOptions controls a bench run.
type benchOptions struct {
	Tiers    []string
	Runs     int
	MaxTicks uint64
	Seed     int64
}

func runBenchCmd(_ *cobra.Command, _ []string) {
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

	seed := flagSeed
	if seed == 0 {
		seed = 1 // Bench results are meant to be comparable
	}
	tiers := cfg.TierNames()
	if flagDifficulty != "" {
		preset, _, _ := cfg.Tier(flagDifficulty)
		tiers = []string{string(preset)}
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	opts := benchOptions{Tiers: tiers, Runs: flagBenchRuns, MaxTicks: flagBenchMaxTicks, Seed: seed}
	if err := runBench(cfg, opts, store, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := printBenchSummary(os.Stdout, store, tiers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBench plays opts.Runs autopilot sessions per tier and records each one.
// Runs of one tier share a session, so the high score carries over.
func runBench(cfg config.Config, opts benchOptions, store *storage.Store, logger *log.Logger) error {
	pilot := jumper.NewAutopilot(cfg)

	for _, tier := range opts.Tiers {
		session := jumper.NewSession(cfg, core.RuntimeConfig{Seed: opts.Seed}, jumper.WithDifficulty(tier))
		started := time.Now()

		for i := range opts.Runs {
			var err error
			if session.Screen() == jumper.ScreenGameOver {
				err = session.Restart()
			} else {
				err = session.Start()
			}
			if err != nil {
				return fmt.Errorf("bench: %s run %d: %w", tier, i+1, err)
			}

			snap := playAutopilot(session, pilot, opts.MaxTicks)

			cause := string(snap.Cause)
			if !snap.GameOver() {
				cause = causeTimeout
				if err := session.ToMenu(); err != nil {
					return fmt.Errorf("bench: %s run %d: %w", tier, i+1, err)
				}
			}

			if _, err := store.SaveRun(storage.Run{
				Difficulty: string(snap.Difficulty),
				Score:      snap.Score,
				Height:     snap.Height,
				Cause:      cause,
				Ticks:      snap.Tick,
				NewRecord:  snap.NewRecord,
				Seed:       opts.Seed,
			}); err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			logger.Debug("run finished",
				"difficulty", tier,
				"run", i+1,
				"score", snap.Score,
				"cause", cause,
				"ticks", snap.Tick)
		}

		logger.Info("tier done",
			"difficulty", tier,
			"runs", opts.Runs,
			"best", session.HighScore(),
			"elapsed", time.Since(started).Round(time.Millisecond))
	}
	return nil
}

// playAutopilot ticks the session until it ends or maxTicks is reached.
func playAutopilot(s *jumper.Session, pilot jumper.Autopilot, maxTicks uint64) jumper.Snapshot {
	snap := s.Snapshot()
	for snap.Screen == jumper.ScreenPlaying && (maxTicks == 0 || snap.Tick < maxTicks) {
		snap = s.Tick(pilot.Decide(snap)).Snapshot
	}
	return snap
}

// printBenchSummary writes one line per tier from the stored runs.
func printBenchSummary(w io.Writer, store *storage.Store, tiers []string) error {
	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	fmt.Fprintf(w, "  %-10s  %5s  %7s  %9s  %5s  %5s  %s\n",
		"Tier", "Runs", "Best", "Avg", "Lava", "Enemy", "Ticks")
	fmt.Fprintf(w, "  %-10s  %5s  %7s  %9s  %5s  %5s  %s\n",
		"----", "----", "----", "---", "----", "-----", "-----")

	for _, tier := range tiers {
		st, ok := stats[tier]
		if !ok {
			fmt.Fprintf(w, "  %-10s  %5d\n", tier, 0)
			continue
		}
		fmt.Fprintf(w, "  %-10s  %5d  %7d  %9.1f  %5d  %5d  %d\n",
			tier, st.Runs, st.BestScore, st.AvgScore, st.LavaDeaths, st.EnemyDeaths, st.TotalTicks)
	}
	return nil
}
