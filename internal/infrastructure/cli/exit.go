package cli

import (
	"errors"

	"github.com/doeshing/termdrop/internal/domain"
)

// Process exit codes.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitNoTerminalAvailable = 2
	ExitInvalidDirectory    = 3
	ExitInvalidCommand      = 4
	ExitSpawnFailed         = 5
)

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrNoTerminalAvailable):
		return ExitNoTerminalAvailable
	case errors.Is(err, domain.ErrInvalidDirectory):
		return ExitInvalidDirectory
	case errors.Is(err, domain.ErrInvalidCommand):
		return ExitInvalidCommand
	case errors.Is(err, domain.ErrSpawnFailed):
		return ExitSpawnFailed
	default:
		return ExitFailure
	}
}

// Hint returns a follow-up suggestion for launch failures, or "".
func Hint(err error) string {
	switch domain.LaunchReason(err) {
	case domain.ReasonUnknownTerminal:
		return "run `termdrop terminals` to list supported terminal ids"
	case domain.ReasonNotInstalled:
		return "install the terminal or drop --terminal to pick one automatically"
	case domain.ReasonNoneDetected, domain.ReasonNotFoundAtSpawn:
		return "run `termdrop doctor` to see what was detected"
	}
	return ""
}
