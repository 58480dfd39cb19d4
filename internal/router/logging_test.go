package router

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelWarn, &buf)

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept warn")
	log.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-severity messages leaked: %s", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("expected messages missing: %s", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelDebug, &buf)

	log.Info("opened %d files", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO] vimrelay: opened 3 files") {
		t.Errorf("unexpected line: %s", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelDebug, &buf).WithField("invocation", "abc123")

	log.Info("hello")

	if !strings.Contains(buf.String(), "invocation=abc123") {
		t.Errorf("field missing: %s", buf.String())
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelDebug, &buf).WithComponent("launch")

	log.Info("hello")

	if !strings.Contains(buf.String(), "component=launch") {
		t.Errorf("component missing: %s", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Error("nothing to see")
}
