package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStdLoggerVerboseGate(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, false)

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output when not verbose, got %q", buf.String())
	}

	log.Warn("shown", map[string]interface{}{"terminal": "xterm"})
	if !strings.Contains(buf.String(), "[WARN] shown terminal=xterm") {
		t.Fatalf("unexpected warn output %q", buf.String())
	}
}

func TestStdLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, true)

	log.Error("launch failed", errors.New("boom"), map[string]interface{}{"b": 2, "a": 1})
	out := buf.String()
	if !strings.Contains(out, "[ERROR] launch failed: boom a=1 b=2") {
		t.Fatalf("unexpected error output %q", out)
	}
}
