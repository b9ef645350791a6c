// Package process spawns terminal emulators detached from termdrop.
//
// The launcher starts the child in its own session (process group on
// Windows), points its standard streams at the null device and returns as
// soon as the process exists. The child's lifetime is not managed: a
// background goroutine only reaps it so no zombie is left behind.
package process

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// Launcher implements ports.ProcessLauncher.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch starts inv.Argv and returns once the process has been created.
func (l *Launcher) Launch(inv domain.Invocation) (domain.LaunchResult, error) {
	if len(inv.Argv) == 0 {
		return domain.LaunchResult{}, domain.NewLaunchError(domain.ErrSpawnFailed, "", inv.Terminal, "empty argument vector", nil)
	}

	path, err := exec.LookPath(inv.Argv[0])
	if err != nil {
		return domain.LaunchResult{}, classifyLookup(inv, err)
	}
	if err := checkWorkdir(inv.Dir); err != nil {
		return domain.LaunchResult{}, domain.NewLaunchError(domain.ErrSpawnFailed, "", inv.Terminal, err.Error(), err)
	}

	cmd := exec.Command(path, inv.Argv[1:]...)
	cmd.Args[0] = inv.Argv[0]
	cmd.Dir = inv.Dir
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return domain.LaunchResult{}, domain.NewLaunchError(domain.ErrSpawnFailed, "", inv.Terminal, err.Error(), err)
	}

	pid := cmd.Process.Pid
	go func() {
		_ = cmd.Wait()
	}()

	if l.logger != nil {
		l.logger.Info("terminal launched", map[string]interface{}{
			"terminal": inv.Terminal,
			"pid":      pid,
			"dir":      inv.Dir,
		})
	}
	return domain.LaunchResult{
		Terminal: inv.Terminal,
		Shell:    inv.Shell,
		Argv:     append([]string(nil), inv.Argv...),
		PID:      pid,
	}, nil
}

// classifyLookup maps a failed binary lookup onto the launch error kinds. A
// binary that vanished between detection and spawn counts as no terminal
// available; anything else, such as a missing execute bit, is a spawn failure.
func classifyLookup(inv domain.Invocation, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return domain.NewLaunchError(domain.ErrNoTerminalAvailable, domain.ReasonNotFoundAtSpawn, inv.Terminal,
			strings.TrimSpace(err.Error()), err)
	}
	return domain.NewLaunchError(domain.ErrSpawnFailed, "", inv.Terminal, err.Error(), err)
}

// checkWorkdir reports a working directory that disappeared after validation.
func checkWorkdir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("working directory %s is not a directory", dir)
	}
	return nil
}

var _ ports.ProcessLauncher = (*Launcher)(nil)
