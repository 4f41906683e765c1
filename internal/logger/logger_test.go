package logger

import (
	"testing"

	"portplanner/internal/config"
)

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "verbose", Encoding: "json"})
	if err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestNewBuildsJSONLogger(t *testing.T) {
	l, err := New(config.LogConfig{Level: "info", Encoding: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l == nil {
		t.Fatalf("expected logger")
	}
}

func TestForRunNilLoggerIsSafe(t *testing.T) {
	l := ForRun(nil, "run-1")
	if l == nil {
		t.Fatalf("expected nop logger")
	}
	l.Info("ignored")
}
