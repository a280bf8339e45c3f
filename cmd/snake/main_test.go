package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestControlsCommand(t *testing.T) {
	var buf bytes.Buffer
	controlsCmd.SetOut(&buf)
	runControls(controlsCmd, nil)

	out := buf.String()
	for _, want := range []string{"Controls:", "up", "left", "pause", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("controls output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}

	logger, closeLog, err := newLogger("", "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()
	logger.Debug("discarded") // Should not panic
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello", "score", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}
