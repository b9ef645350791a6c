package terminal

import (
	"errors"
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		env        domain.EnvironmentContext
		override   string
		want       string
		wantReason string
	}{
		{
			name: "session preference wins over generic order",
			env:  domain.EnvironmentContext{Session: domain.SessionKDE, Available: []string{"konsole", "xterm"}},
			want: "konsole",
		},
		{
			name: "unknown session uses generic order",
			env:  domain.EnvironmentContext{Available: []string{"alacritty", "xterm"}},
			want: "alacritty",
		},
		{
			name: "generic tail after session list",
			env:  domain.EnvironmentContext{Session: domain.SessionGNOME, Available: []string{"xterm"}},
			want: "xterm",
		},
		{
			name:     "override honoured",
			env:      domain.EnvironmentContext{Session: domain.SessionKDE, Available: []string{"konsole", "xterm"}},
			override: "xterm",
			want:     "xterm",
		},
		{
			name:       "override typo",
			env:        domain.EnvironmentContext{Available: []string{"xterm"}},
			override:   "xtrem",
			wantReason: domain.ReasonUnknownTerminal,
		},
		{
			name:       "override not installed",
			env:        domain.EnvironmentContext{Available: []string{"xterm"}},
			override:   "kitty",
			wantReason: domain.ReasonNotInstalled,
		},
		{
			name:       "nothing detected",
			env:        domain.EnvironmentContext{Session: domain.SessionGNOME},
			wantReason: domain.ReasonNoneDetected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.env, tt.override)
			if tt.wantReason != "" {
				if !errors.Is(err, domain.ErrNoTerminalAvailable) {
					t.Fatalf("expected ErrNoTerminalAvailable, got %v", err)
				}
				if reason := domain.LaunchReason(err); reason != tt.wantReason {
					t.Fatalf("reason = %q, want %q", reason, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tt.want {
				t.Fatalf("selected %q, want %q", got.ID, tt.want)
			}
		})
	}
}
