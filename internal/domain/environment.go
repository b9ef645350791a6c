package domain

import "time"

// SessionKind identifies the desktop/windowing environment.
type SessionKind string

const (
	SessionUnknown  SessionKind = ""
	SessionGNOME    SessionKind = "gnome"
	SessionKDE      SessionKind = "kde"
	SessionXFCE     SessionKind = "xfce"
	SessionMATE     SessionKind = "mate"
	SessionLXDE     SessionKind = "lxde"
	SessionLXQt     SessionKind = "lxqt"
	SessionCinnamon SessionKind = "cinnamon"
	SessionBudgie   SessionKind = "budgie"
	SessionSway     SessionKind = "sway"
	SessionHyprland SessionKind = "hyprland"
	SessionMacOS    SessionKind = "macos"
	SessionWindows  SessionKind = "windows"
)

// Known reports whether the session was recognized.
func (s SessionKind) Known() bool {
	return s != SessionUnknown
}

func (s SessionKind) String() string {
	if s == SessionUnknown {
		return "unknown"
	}
	return string(s)
}

// EnvironmentContext is a read-only snapshot of the host environment.
type EnvironmentContext struct {
	Session       SessionKind
	DisplayServer string
	// Available lists detected terminal ids in registry order.
	Available  []string
	DetectedAt time.Time
}

// Has reports whether the terminal id was detected.
func (e EnvironmentContext) Has(id string) bool {
	for _, a := range e.Available {
		if a == id {
			return true
		}
	}
	return false
}
