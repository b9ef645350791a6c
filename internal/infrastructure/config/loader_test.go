package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("first load mismatch (-want +got):\n%s", diff)
	}
	if cfg.LastCommand != domain.DefaultCommand || cfg.History.MaxEntries != domain.DefaultMaxHistoryEntries {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not written: %v", err)
	}
}

func TestLoadHonoursEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, path)

	loader := NewFileLoader("")
	if loader.Path() != path {
		t.Fatalf("Path() = %q, want %q", loader.Path(), path)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.LastDirectory = "/home/dev/it's here"
	cfg.Launch.Terminal = "kitty"
	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("last_directory: /srv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LastDirectory != "/srv" || cfg.Hotkey != domain.DefaultHotkey || cfg.History.Backend != domain.HistoryBackendSQLite {
		t.Fatalf("partial file not hydrated: %+v", cfg)
	}
}

func TestLoadNormalizesHandEditedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "hotkey: CTRL+ALT+C\nwindow_position: abc\nlaunch:\n  terminal: \" xtrem \"\nhistory:\n  backend: File\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Hotkey != "ctrl+alt+c" || cfg.WindowPosition != domain.DefaultWindowPosition {
		t.Fatalf("hotkey/window position not normalized: %+v", cfg)
	}
	if cfg.History.Backend != domain.HistoryBackendFile {
		t.Fatalf("backend = %q, want %q", cfg.History.Backend, domain.HistoryBackendFile)
	}
	if cfg.Launch.Terminal != "xtrem" {
		t.Fatalf("unknown terminal ids must be kept for the selector, got %q", cfg.Launch.Terminal)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history:\n  backend: redis\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown history backend")
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResetAndBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg := DefaultConfig()
	cfg.LastCommand = "claude --resume"
	if err := loader.Save(cfg); err != nil {
		t.Fatal(err)
	}

	backup, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup() error: %v", err)
	}
	raw, err := os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "claude --resume") {
		t.Fatalf("backup lacks saved content:\n%s", raw)
	}

	reset, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if reset.LastCommand != domain.DefaultCommand {
		t.Fatalf("reset kept old command %q", reset.LastCommand)
	}
}
