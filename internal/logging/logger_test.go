package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// captureStderrLog is a test helper to capture stderr-routed log output
func captureStderrLog(level string, fn func()) string {
	var buf bytes.Buffer

	// Save original logger
	originalLogger := stderrLogger

	// Create new logger with buffer
	stderrLogger = log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false, // Disable timestamps for easier testing
	})

	SetLevel(level)
	fn()

	// Restore original logger
	stderrLogger = originalLogger

	return strings.TrimSpace(buf.String())
}

// TestLogLevels tests that logging functions work at different levels
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name: "Warn level",
			logFunc: func() {
				Warn("unknown config key %q", "harbor.tpyo")
			},
			expected: `unknown config key "harbor.tpyo"`,
		},
		{
			name: "Error level",
			logFunc: func() {
				Error("test error message")
			},
			expected: "test error message",
		},
		{
			name: "Debug level",
			logFunc: func() {
				Debug("test debug message")
			},
			expected: "test debug message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderrLog("DEBUG", tt.logFunc)

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.expected, output)
			}
		})
	}
}

// TestSetLevelFiltering tests that log level filtering works correctly
func TestSetLevelFiltering(t *testing.T) {
	output := captureStderrLog("ERROR", func() {
		Debug("should be filtered")
		Warn("should be filtered too")
		Error("should appear")
	})

	if strings.Contains(output, "filtered") {
		t.Errorf("ERROR level let lower levels through: %q", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("ERROR level suppressed errors: %q", output)
	}
}

// TestWarnVisibleAfterQuietSetup tests that the default quiet configuration
// (ERROR level plus output suppression, as applied on every CLI start) still
// lets non-fatal warnings through to the error stream.
func TestWarnVisibleAfterQuietSetup(t *testing.T) {
	output := captureStderrLog("ERROR", func() {
		SuppressOutput()
		Warn("unknown config key %q", "harbor.tpyo")
		Debug("request trace noise")
	})

	if !strings.Contains(output, "harbor.tpyo") {
		t.Errorf("warning invisible after quiet setup: %q", output)
	}
	if strings.Contains(output, "noise") {
		t.Errorf("quiet setup let debug output through: %q", output)
	}
}

// TestSuppressOutputKeepsVerboseLevels tests that suppression never raises a
// logger that was already configured more verbose than WARN.
func TestSuppressOutputKeepsVerboseLevels(t *testing.T) {
	output := captureStderrLog("DEBUG", func() {
		SuppressOutput()
		Debug("kept debug line")
	})

	if !strings.Contains(output, "kept debug line") {
		t.Errorf("SuppressOutput raised an explicitly verbose level: %q", output)
	}
}

func TestDebugEnabled(t *testing.T) {
	defer SetLevel("ERROR")

	SetLevel("DEBUG")
	if !DebugEnabled() {
		t.Error("DebugEnabled() = false at DEBUG level")
	}
	SetLevel("INFO")
	if DebugEnabled() {
		t.Error("DebugEnabled() = true at INFO level")
	}
}

func TestIsValidLogLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if !IsValidLogLevel(level) {
			t.Errorf("IsValidLogLevel(%s) = false", level)
		}
	}
	for _, level := range []string{"TRACE", "info", ""} {
		if IsValidLogLevel(level) {
			t.Errorf("IsValidLogLevel(%q) = true", level)
		}
	}
}
