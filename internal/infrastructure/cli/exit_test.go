package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"no terminal", domain.NewLaunchError(domain.ErrNoTerminalAvailable, domain.ReasonNoneDetected, "", "", nil), ExitNoTerminalAvailable},
		{"invalid directory", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", "/nope", nil), ExitInvalidDirectory},
		{"invalid command", domain.NewLaunchError(domain.ErrInvalidCommand, "", "", "", nil), ExitInvalidCommand},
		{"spawn failed", domain.NewLaunchError(domain.ErrSpawnFailed, "", "xterm", "", errors.New("boom")), ExitSpawnFailed},
		{"wrapped", fmt.Errorf("launch: %w", domain.ErrSpawnFailed), ExitSpawnFailed},
		{"other", errors.New("config broken"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHint(t *testing.T) {
	err := domain.NewLaunchError(domain.ErrNoTerminalAvailable, domain.ReasonUnknownTerminal, "xtrem", "", nil)
	if Hint(err) == "" {
		t.Fatal("expected a hint for unknown terminal")
	}
	if got := Hint(errors.New("plain")); got != "" {
		t.Fatalf("unexpected hint %q", got)
	}
}
