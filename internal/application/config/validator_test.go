package config

import (
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestNormalizeWindowPosition(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "center"},
		{"CENTER", "center"},
		{"100,200", "100,200"},
		{" 10 , 20 ", "10,20"},
		{"-5,10", "center"},
		{"10", "center"},
		{"a,b", "center"},
		{"1,2,3", "center"},
	}
	for _, tt := range tests {
		if got := normalizeWindowPosition(tt.in); got != tt.want {
			t.Errorf("normalizeWindowPosition(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	cfg := domain.Config{
		Hotkey:      "  Ctrl+Shift+T ",
		LastCommand: "   ",
		Launch:      domain.LaunchSettings{Terminal: " kitty "},
	}
	got, err := Normalize(cfg, func(id string) bool { return id == "kitty" })
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if got.Hotkey != "ctrl+shift+t" || got.LastCommand != domain.DefaultCommand || got.Launch.Terminal != "kitty" {
		t.Fatalf("unexpected normalized config %+v", got)
	}
	if got.History.MaxEntries != domain.DefaultMaxHistoryEntries || got.History.Backend != domain.HistoryBackendSQLite {
		t.Fatalf("history defaults missing: %+v", got.History)
	}
}

func TestValidateErrors(t *testing.T) {
	known := func(id string) bool { return id == "xterm" }
	tests := []struct {
		name string
		cfg  domain.Config
	}{
		{"unknown terminal", domain.Config{Launch: domain.LaunchSettings{Terminal: "xtrem"}}},
		{"negative history", domain.Config{History: domain.HistorySettings{MaxEntries: -1}}},
		{"bad backend", domain.Config{History: domain.HistorySettings{Backend: "postgres"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.cfg, known); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if err := Validate(domain.Config{Launch: domain.LaunchSettings{Terminal: "anything"}}, nil); err != nil {
		t.Fatalf("nil checker must skip terminal validation: %v", err)
	}
}
