package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Launch failure kinds.
var (
	ErrNoTerminalAvailable = errors.New("no terminal available")
	ErrInvalidDirectory    = errors.New("invalid directory")
	ErrInvalidCommand      = errors.New("invalid command")
	ErrSpawnFailed         = errors.New("spawn failed")
)

// Reasons refining ErrNoTerminalAvailable.
const (
	ReasonUnknownTerminal = "unknown-terminal"
	ReasonNotInstalled    = "not-installed"
	ReasonNoneDetected    = "none-detected"
	ReasonNotFoundAtSpawn = "not-found-at-spawn"
)

// LaunchRequest is what the picker hands to the launcher.
type LaunchRequest struct {
	Directory        string
	Command          string
	TerminalOverride string
	ShellOverride    string
}

// Invocation is a fully built argument vector ready to spawn.
type Invocation struct {
	Terminal string
	Shell    string
	Argv     []string
	Dir      string
}

// LaunchResult reports a successful spawn.
type LaunchResult struct {
	Terminal string
	Shell    string
	Argv     []string
	PID      int
}

// LaunchError is the typed failure returned across the launch API.
type LaunchError struct {
	Kind     error
	Reason   string
	Terminal string
	Detail   string
	Err      error
}

func (e *LaunchError) Error() string {
	msg := e.Kind.Error()
	if e.Terminal != "" {
		msg += fmt.Sprintf(" (terminal %q)", e.Terminal)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches the failure kind so callers can use errors.Is(err, ErrSpawnFailed).
func (e *LaunchError) Is(target error) bool {
	return target == e.Kind
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError builds a LaunchError of the given kind.
func NewLaunchError(kind error, reason, terminal, detail string, err error) *LaunchError {
	return &LaunchError{Kind: kind, Reason: reason, Terminal: terminal, Detail: detail, Err: err}
}

// LaunchReason extracts the reason from a launch error chain.
func LaunchReason(err error) string {
	var le *LaunchError
	if errors.As(err, &le) {
		return le.Reason
	}
	return ""
}

// CommandWords splits a command on space, tab and newline, the default shell
// field separators. Other Unicode spaces stay inside their word.
func CommandWords(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n'
	})
}
