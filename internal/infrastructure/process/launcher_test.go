package process

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestLaunchMissingBinary(t *testing.T) {
	l := NewLauncher(nil)
	inv := domain.Invocation{Terminal: "ghost", Argv: []string{"termdrop-no-such-terminal-xyz"}, Dir: t.TempDir()}

	_, err := l.Launch(inv)
	if !errors.Is(err, domain.ErrNoTerminalAvailable) {
		t.Fatalf("expected ErrNoTerminalAvailable, got %v", err)
	}
	if reason := domain.LaunchReason(err); reason != domain.ReasonNotFoundAtSpawn {
		t.Fatalf("reason = %q", reason)
	}
}

func TestLaunchMissingAbsolutePath(t *testing.T) {
	l := NewLauncher(nil)
	dir := t.TempDir()
	inv := domain.Invocation{Terminal: "ghost", Argv: []string{filepath.Join(dir, "missing")}, Dir: dir}

	if _, err := l.Launch(inv); !errors.Is(err, domain.ErrNoTerminalAvailable) {
		t.Fatalf("expected ErrNoTerminalAvailable, got %v", err)
	}
}

func TestLaunchEmptyArgv(t *testing.T) {
	if _, err := NewLauncher(nil).Launch(domain.Invocation{}); !errors.Is(err, domain.ErrSpawnFailed) {
		t.Fatalf("expected ErrSpawnFailed, got %v", err)
	}
}

func TestLaunchNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute permission is a unix concept")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-term")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewLauncher(nil).Launch(domain.Invocation{Terminal: "fake", Argv: []string{bin}, Dir: dir})
	if !errors.Is(err, domain.ErrSpawnFailed) {
		t.Fatalf("expected ErrSpawnFailed, got %v", err)
	}
	if errors.Is(err, domain.ErrNoTerminalAvailable) {
		t.Fatal("permission failure must not look like a missing terminal")
	}
}

func TestLaunchMissingWorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	dir := filepath.Join(t.TempDir(), "gone")
	_, err := NewLauncher(nil).Launch(domain.Invocation{Terminal: "sh", Argv: []string{"/bin/sh", "-c", "exit 0"}, Dir: dir})
	if !errors.Is(err, domain.ErrSpawnFailed) {
		t.Fatalf("expected ErrSpawnFailed, got %v", err)
	}
	if errors.Is(err, domain.ErrNoTerminalAvailable) || domain.LaunchReason(err) != "" {
		t.Fatalf("a missing directory must not look like a missing terminal: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) || !strings.Contains(err.Error(), "working directory") {
		t.Fatalf("error lacks the directory cause: %v", err)
	}
}

func TestLaunchWorkingDirectoryIsFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := NewLauncher(nil).Launch(domain.Invocation{Terminal: "sh", Argv: []string{"/bin/sh", "-c", "exit 0"}, Dir: file})
	if !errors.Is(err, domain.ErrSpawnFailed) {
		t.Fatalf("expected ErrSpawnFailed, got %v", err)
	}
}

func TestLaunchTwiceSpawnsTwice(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	l := NewLauncher(nil)
	inv := domain.Invocation{Terminal: "sh", Shell: "/bin/sh", Argv: []string{"/bin/sh", "-c", "exit 0"}, Dir: t.TempDir()}

	first, err := l.Launch(inv)
	if err != nil {
		t.Fatalf("first launch: %v", err)
	}
	second, err := l.Launch(inv)
	if err != nil {
		t.Fatalf("second launch: %v", err)
	}
	if first.PID <= 0 || second.PID <= 0 || first.PID == second.PID {
		t.Fatalf("expected two distinct processes, got %d and %d", first.PID, second.PID)
	}
	if first.Terminal != "sh" || len(first.Argv) != 3 {
		t.Fatalf("unexpected result %+v", first)
	}
}
