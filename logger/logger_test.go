// ABOUTME: Tests for the slog-backed debug logger
// ABOUTME: Checks level filtering, component tags and the no-op logger

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugfRespectsLevel(t *testing.T) {
	tests := []struct {
		name   string
		debug  bool
		expect bool
	}{
		{name: "debug enabled", debug: true, expect: true},
		{name: "debug disabled", debug: false, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWriter(&buf, tt.debug)

			l.Debugf("moved %s to %d", "item1", 2)

			if got := strings.Contains(buf.String(), "moved item1 to 2"); got != tt.expect {
				t.Errorf("Debugf() written = %v, want %v (output %q)", got, tt.expect, buf.String())
			}
		})
	}
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, false)

	l.SetDebug(true)
	l.Debugf("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("SetDebug(true) did not enable debug output: %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, true).With("engine")

	l.Warnf("careful")

	out := buf.String()
	if !strings.Contains(out, "component=engine") || !strings.Contains(out, "level=WARN") {
		t.Errorf("With() output = %q, want component and level", out)
	}
}

func TestNopLogger(t *testing.T) {
	l := Nop()

	// must not panic
	l.Debugf("dropped %d", 1)
	l.SetDebug(true)
	l.With("x").Errorf("dropped")

	if err := l.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	l, err := New(path, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debugf("hello %s", "file")

	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q, want message", data)
	}
}
