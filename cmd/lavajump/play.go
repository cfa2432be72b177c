package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lavajump/internal/audio"
	"github.com/vovakirdan/lavajump/internal/core"
	"github.com/vovakirdan/lavajump/internal/platform/tui"
	"github.com/vovakirdan/lavajump/internal/storage"
)

var (
	flagVolume    int
	flagNoMusic   bool
	flagMute      bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game.

Controls:
  A/D, Left/Right  - Steer (each press holds for a few ticks)
  P                - Pause
  R/Enter          - Restart (after game over)
  Esc/B            - Back to menu
  Tab              - Run history (on the menu)
  Ctrl+S           - Screenshot to ~/.lavajump/screenshots
  Q/Ctrl+C         - Quit

Examples:
  lavajump play
  lavajump play --difficulty easy --volume 40
  lavajump play --mute --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagVolume, "volume", audio.DefaultVolume, "Master volume 0-100")
	cmd.Flags().BoolVar(&flagNoMusic, "no-music", false, "Disable the music loop")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the audio device")
	cmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a steering press stays active")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal; logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
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

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Run history lives for this process only
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		store = nil
	}

	sound := audio.NewManager(audio.Settings{Volume: flagVolume, Music: !flagNoMusic})
	if !flagMute {
		if err := sound.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rc,
		Difficulty: flagDifficulty,
		HoldTicks:  flagHoldTicks,
		Store:      store,
		Audio:      sound,
		Logger:     logger,
	})

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
