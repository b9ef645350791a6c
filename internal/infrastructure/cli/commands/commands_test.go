package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/terminal"
)

type staticConfig struct {
	cfg domain.Config
}

func (s staticConfig) Load(context.Context) (domain.Config, error) {
	return s.cfg, nil
}

type countingDetector struct {
	calls atomic.Int32
}

func (d *countingDetector) Detect() domain.EnvironmentContext {
	d.calls.Add(1)
	return domain.EnvironmentContext{Session: domain.SessionUnknown, Available: []string{"xterm"}}
}

func TestTerminalsRefreshDetectsOnce(t *testing.T) {
	det := &countingDetector{}
	container := &app.Container{
		ConfigProvider: staticConfig{},
		Environment:    terminal.NewCache(det),
		Selector:       terminal.Selector{},
	}

	var out bytes.Buffer
	cmd := NewTerminalsCommand(container)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--refresh"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("terminals --refresh: %v", err)
	}
	if got := det.calls.Load(); got != 1 {
		t.Fatalf("detection ran %d times, want 1", got)
	}
	if !strings.Contains(out.String(), "Session:") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestPickRefusesWithoutTerminal(t *testing.T) {
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })

	cmd := NewPickCommand(&app.Container{ConfigProvider: staticConfig{}})
	cmd.SetArgs(nil)
	err := cmd.Execute()
	if err == nil || err.Error() != ErrNotATerminal {
		t.Fatalf("expected %q, got %v", ErrNotATerminal, err)
	}
	if errors.Is(err, domain.ErrNoTerminalAvailable) {
		t.Fatal("a missing TTY is not a launch failure")
	}
}

func TestRenderInvocationListsEveryArgument(t *testing.T) {
	var out bytes.Buffer
	renderInvocation(&out, domain.Invocation{
		Terminal: "xterm",
		Shell:    "/bin/sh",
		Dir:      "/tmp/a b",
		Argv:     []string{"xterm", "-e", "/bin/sh", "-c", "cd '/tmp/a b' && 'ls'\n; exec /bin/sh"},
	})
	for _, want := range []string{"[0] xterm", "[1] -e", `[4] cd '/tmp/a b' && 'ls'\n; exec /bin/sh`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}
