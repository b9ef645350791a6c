package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/history"
)

// isolate points HOME, the config and the session variables at a clean
// temporary state and returns the home directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("TERMDROP_CONFIG", "")
	for _, name := range []string{
		"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "XDG_SESSION_TYPE",
		"KDE_FULL_SESSION", "GNOME_DESKTOP_SESSION_ID", "SWAYSOCK", "HYPRLAND_INSTANCE_SIGNATURE",
	} {
		t.Setenv(name, "")
	}
	return home
}

// runRoot executes args against a fresh command tree and returns the output,
// the error and the container the commands used.
func runRoot(t *testing.T, home string, args ...string) (string, *app.Container, error) {
	t.Helper()
	var out bytes.Buffer
	container := &app.Container{}
	root := newRootCmd(context.Background(), Options{}, container)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(home, "custom.yaml")}, args...))
	err := execute(context.Background(), root, container)
	return out.String(), container, err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := runRoot(t, isolate(t), args...)
	if err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out
}

func TestRootConfigFlag(t *testing.T) {
	out := mustRun(t, "config", "path")
	if !strings.HasSuffix(strings.TrimSpace(out), "custom.yaml") {
		t.Fatalf("config path ignored --config: %q", out)
	}
}

func TestRootVersion(t *testing.T) {
	out := mustRun(t, "version")
	if !strings.Contains(out, "termdrop version") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestRootEmptyHistory(t *testing.T) {
	out := mustRun(t, "history", "launches")
	if !strings.Contains(out, "No history recorded yet.") {
		t.Fatalf("unexpected history output: %q", out)
	}
}

func TestRootConfigGet(t *testing.T) {
	out := mustRun(t, "config", "get", "--key", "history.backend")
	if strings.TrimSpace(out) != domain.HistoryBackendSQLite {
		t.Fatalf("history.backend = %q", out)
	}
}

func TestLaunchExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args func(dir string) []string
		want int
	}{
		{
			name: "missing directory",
			args: func(dir string) []string { return []string{"launch", "--dir", filepath.Join(dir, "missing"), "--cmd", "x"} },
			want: ExitInvalidDirectory,
		},
		{
			name: "directory is a file",
			args: func(dir string) []string { return []string{"launch", "--dir", filepath.Join(dir, "plain"), "--cmd", "x"} },
			want: ExitInvalidDirectory,
		},
		{
			name: "command with NUL byte",
			args: func(dir string) []string { return []string{"launch", "--dir", dir, "--cmd", "claude\x00rm"} },
			want: ExitInvalidCommand,
		},
		{
			name: "unknown terminal",
			args: func(dir string) []string { return []string{"launch", "--dir", dir, "--cmd", "x", "--terminal", "xtrem"} },
			want: ExitNoTerminalAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "plain"), nil, 0o600); err != nil {
				t.Fatal(err)
			}
			_, _, err := runRoot(t, home, tt.args(dir)...)
			if got := ExitCode(err); got != tt.want {
				t.Fatalf("exit code = %d, want %d (err: %v)", got, tt.want, err)
			}
		})
	}
}

func TestLaunchDryRunListsArgv(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on the generic unix preference list")
	}
	home := isolate(t)
	bin := t.TempDir()
	if err := os.WriteFile(filepath.Join(bin, "xterm"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin)
	dir := filepath.Join(t.TempDir(), "my project")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runRoot(t, home, "launch", "--dry-run", "--dir", dir, "--cmd", "claude --continue", "--shell", "/bin/sh")
	if err != nil {
		t.Fatalf("launch --dry-run: %v", err)
	}
	for _, want := range []string{
		"[0] xterm",
		"[1] -e",
		"[2] /bin/sh",
		"[3] -c",
		"[4] cd '" + dir + "' && 'claude' '--continue'; exec /bin/sh",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dry-run output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Launched") {
		t.Fatal("dry run must not spawn")
	}
}

func TestExecuteClosesHistoryOnFailure(t *testing.T) {
	home := isolate(t)
	_, container, err := runRoot(t, home, "launch", "--dir", filepath.Join(home, "missing"), "--cmd", "x")
	if !errors.Is(err, domain.ErrInvalidDirectory) {
		t.Fatalf("unexpected error %v", err)
	}
	store, ok := container.HistoryStore.(*history.SQLiteStore)
	if !ok {
		t.Skipf("history uses %T", container.HistoryStore)
	}
	if _, err := store.Records(1); err == nil {
		t.Fatal("history store still open after a failed command")
	}
}
