package terminal

import (
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// Select picks the terminal for a launch. An explicit override is honoured or
// rejected, never silently replaced; otherwise the session's preference order
// decides among the detected terminals.
func Select(env domain.EnvironmentContext, override string) (domain.TerminalDescriptor, error) {
	if override = strings.TrimSpace(override); override != "" {
		t, known := Lookup(override)
		if !known {
			return domain.TerminalDescriptor{}, domain.NewLaunchError(domain.ErrNoTerminalAvailable,
				domain.ReasonUnknownTerminal, override, "not a supported terminal id", nil)
		}
		if !env.Has(override) {
			return domain.TerminalDescriptor{}, domain.NewLaunchError(domain.ErrNoTerminalAvailable,
				domain.ReasonNotInstalled, override, "terminal was not detected on this system", nil)
		}
		return t, nil
	}

	for _, id := range Preferences(env.Session) {
		if !env.Has(id) {
			continue
		}
		if t, ok := Lookup(id); ok {
			return t, nil
		}
	}
	return domain.TerminalDescriptor{}, domain.NewLaunchError(domain.ErrNoTerminalAvailable,
		domain.ReasonNoneDetected, "", "install one of: "+strings.Join(Preferences(env.Session), ", "), nil)
}

// Selector adapts Select to ports.TerminalSelector.
type Selector struct{}

func (Selector) Select(env domain.EnvironmentContext, override string) (domain.TerminalDescriptor, error) {
	return Select(env, override)
}

var _ ports.TerminalSelector = Selector{}
