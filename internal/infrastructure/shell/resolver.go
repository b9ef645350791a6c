package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/riywo/loginshell"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/pkg/filesystem"
	"github.com/doeshing/termdrop/internal/ports"
)

// Resolver determines the interactive shell for new terminal windows.
// The function fields default to the real OS and are swapped in tests.
type Resolver struct {
	GOOS       string
	Getenv     func(string) string
	Stat       func(string) (os.FileInfo, error)
	LookPath   func(string) (string, error)
	LoginShell func() (string, error)
	logger     ports.Logger
}

// NewResolver builds a resolver bound to the host.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{
		GOOS:       runtime.GOOS,
		Getenv:     os.Getenv,
		Stat:       os.Stat,
		LookPath:   exec.LookPath,
		LoginShell: loginshell.Shell,
		logger:     logger,
	}
}

// Resolve implements ports.ShellResolver. It never fails: when nothing else
// is usable it degrades to the platform's minimal shell.
func (r *Resolver) Resolve(override string) domain.ShellProfile {
	if override = strings.TrimSpace(override); override != "" {
		if path, ok := r.usable(filesystem.ExpandHome(override)); ok {
			return ProfileFor(path)
		}
		r.warn("shell override unusable, falling back", map[string]interface{}{"shell": override})
	}

	if r.GOOS != "windows" {
		if path, ok := r.usable(r.Getenv("SHELL")); ok {
			return ProfileFor(path)
		}
	}

	if r.LoginShell != nil {
		if login, err := r.LoginShell(); err == nil {
			if path, ok := r.usable(strings.TrimSpace(login)); ok {
				return ProfileFor(path)
			}
		}
	}

	for _, candidate := range candidatesFor(r.GOOS) {
		if path, ok := r.usable(candidate); ok {
			return ProfileFor(path)
		}
	}

	last := lastResortFor(r.GOOS)
	r.debug("using last-resort shell", map[string]interface{}{"shell": last})
	return ProfileFor(last)
}

// usable resolves candidate to an existing file whose family runs on this OS.
func (r *Resolver) usable(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	path := candidate
	if !filepath.IsAbs(path) && !strings.ContainsAny(path, `/\`) {
		found, err := r.LookPath(path)
		if err != nil {
			return "", false
		}
		path = found
	}
	info, err := r.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	if !familySupported(FamilyOf(path), r.GOOS) {
		return "", false
	}
	return path, true
}

func (r *Resolver) warn(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Warn(msg, fields)
	}
}

func (r *Resolver) debug(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, fields)
	}
}

var _ ports.ShellResolver = (*Resolver)(nil)
