package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	flagLogLevel = "debug"
	t.Cleanup(func() { flagLogLevel = "info" })

	l, err := newLogger(io.Discard, "test")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %s, expected debug", l.GetLevel())
	}

	flagLogLevel = "loud"
	if _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("an unknown level should be rejected")
	}
}

func TestFileLogger(t *testing.T) {
	flagLogFile = filepath.Join(t.TempDir(), "snake2.log")
	t.Cleanup(func() { flagLogFile = "" })

	l, closeLog, err := fileLogger("test")
	if err != nil {
		t.Fatalf("fileLogger() failed: %v", err)
	}
	l.Info("hello")
	closeLog()

	flagLogFile = filepath.Join(t.TempDir(), "missing", "snake2.log")
	if _, _, err := fileLogger("test"); err == nil {
		t.Error("a log file in a missing directory should fail")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}
