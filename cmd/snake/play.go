package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	snakeCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size early; Bubble Tea reports the real size on start too.
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = snakeCfg.TickRate
	cfg.Seed = flagSeed
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	logger.Debug("starting", "width", cfg.ScreenW, "height", cfg.ScreenH, "tickRate", cfg.TickRate)

	result, err := tui.Run(cfg, snakeCfg.Options(), logger)
	if err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}

	logger.Info("game finished", "status", result.Status, "score", result.Score)
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}

// newLogger builds the session logger. The TUI owns the terminal while
// playing, so logs only go to a file when one is given.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
