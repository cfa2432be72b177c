package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavajump/internal/config"
)

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lavajump",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closer, nil
}

// loadConfig loads and repairs the configuration, logging every repair.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	for _, warning := range cfg.Validate() {
		logger.Warn("config repaired", "detail", warning)
	}
	if flagDifficulty != "" {
		if _, _, ok := cfg.Tier(flagDifficulty); !ok {
			logger.Warn("unknown difficulty, using default", "difficulty", flagDifficulty)
		}
	}
	return cfg, nil
}
