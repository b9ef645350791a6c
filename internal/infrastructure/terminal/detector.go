package terminal

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// desktopIDs maps lower-cased XDG_CURRENT_DESKTOP / DESKTOP_SESSION tokens to sessions.
var desktopIDs = map[string]domain.SessionKind{
	"gnome":          domain.SessionGNOME,
	"gnome-classic":  domain.SessionGNOME,
	"gnome-xorg":     domain.SessionGNOME,
	"ubuntu":         domain.SessionGNOME,
	"unity":          domain.SessionGNOME,
	"pop":            domain.SessionGNOME,
	"kde":            domain.SessionKDE,
	"plasma":         domain.SessionKDE,
	"plasmawayland":  domain.SessionKDE,
	"xfce":           domain.SessionXFCE,
	"xubuntu":        domain.SessionXFCE,
	"mate":           domain.SessionMATE,
	"lxde":           domain.SessionLXDE,
	"lubuntu":        domain.SessionLXQt,
	"lxqt":           domain.SessionLXQt,
	"x-cinnamon":     domain.SessionCinnamon,
	"cinnamon":       domain.SessionCinnamon,
	"budgie":         domain.SessionBudgie,
	"budgie-desktop": domain.SessionBudgie,
	"sway":           domain.SessionSway,
	"hyprland":       domain.SessionHyprland,
}

// markerVars identify sessions that do not always set XDG_CURRENT_DESKTOP.
var markerVars = []struct {
	name    string
	session domain.SessionKind
}{
	{"KDE_FULL_SESSION", domain.SessionKDE},
	{"GNOME_DESKTOP_SESSION_ID", domain.SessionGNOME},
	{"SWAYSOCK", domain.SessionSway},
	{"HYPRLAND_INSTANCE_SIGNATURE", domain.SessionHyprland},
}

// Detector implements ports.EnvironmentDetector against the live host.
type Detector struct {
	GOOS     string
	Getenv   func(string) string
	LookPath func(string) (string, error)
	Stat     func(string) (os.FileInfo, error)
	Now      func() time.Time
	logger   ports.Logger
}

// NewDetector builds a detector bound to the real environment.
func NewDetector(logger ports.Logger) *Detector {
	return &Detector{
		GOOS:     runtime.GOOS,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		Stat:     os.Stat,
		Now:      time.Now,
		logger:   logger,
	}
}

// Detect reads the session signals and probes every terminal for this OS.
func (d *Detector) Detect() domain.EnvironmentContext {
	env := domain.EnvironmentContext{
		Session:       d.session(),
		DisplayServer: strings.ToLower(strings.TrimSpace(d.Getenv("XDG_SESSION_TYPE"))),
		DetectedAt:    d.Now(),
	}
	for _, t := range registry {
		if !t.SupportsPlatform(d.GOOS) {
			continue
		}
		if d.probe(t) {
			env.Available = append(env.Available, t.ID)
		}
	}
	if d.logger != nil {
		d.logger.Debug("environment detected", map[string]interface{}{
			"session":   env.Session.String(),
			"available": strings.Join(env.Available, ","),
		})
	}
	return env
}

func (d *Detector) session() domain.SessionKind {
	switch d.GOOS {
	case "darwin":
		return domain.SessionMacOS
	case "windows":
		return domain.SessionWindows
	}
	for _, name := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		for _, token := range strings.Split(d.Getenv(name), ":") {
			if s, ok := desktopIDs[strings.ToLower(strings.TrimSpace(token))]; ok {
				return s
			}
		}
	}
	for _, m := range markerVars {
		if strings.TrimSpace(d.Getenv(m.name)) != "" {
			return m.session
		}
	}
	return domain.SessionUnknown
}

// probe is an existence check only; any error means "not available".
func (d *Detector) probe(t domain.TerminalDescriptor) bool {
	if _, err := d.LookPath(t.Binary); err != nil {
		return false
	}
	if len(t.ProbePaths) == 0 {
		return true
	}
	for _, p := range t.ProbePaths {
		if _, err := d.Stat(p); err == nil {
			return true
		}
	}
	return false
}

var _ ports.EnvironmentDetector = (*Detector)(nil)
