package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
)

// Normalize returns cfg with user-facing values cleaned up the way the
// config file documents them, or an error for values that cannot be fixed.
// knownTerminal may be nil to skip checking launch.terminal.
func Normalize(cfg domain.Config, knownTerminal func(string) bool) (domain.Config, error) {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	cfg.Hotkey = normalizeHotkey(cfg.Hotkey)
	cfg.WindowPosition = normalizeWindowPosition(cfg.WindowPosition)
	cfg.LastDirectory = strings.TrimSpace(cfg.LastDirectory)
	cfg.LastCommand = strings.TrimSpace(cfg.LastCommand)
	if cfg.LastCommand == "" {
		cfg.LastCommand = domain.DefaultCommand
	}

	cfg.Launch.Terminal = strings.TrimSpace(cfg.Launch.Terminal)
	cfg.Launch.Shell = strings.TrimSpace(cfg.Launch.Shell)
	if cfg.Launch.Terminal != "" && knownTerminal != nil && !knownTerminal(cfg.Launch.Terminal) {
		return cfg, fmt.Errorf("launch.terminal %q is not a supported terminal id", cfg.Launch.Terminal)
	}

	history, err := normalizeHistory(cfg.History)
	if err != nil {
		return cfg, err
	}
	cfg.History = history
	return cfg, nil
}

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config, knownTerminal func(string) bool) error {
	_, err := Normalize(cfg, knownTerminal)
	return err
}

func normalizeHotkey(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return domain.DefaultHotkey
	}
	return v
}

// normalizeWindowPosition accepts "center" or "x,y" with non-negative
// integers; anything else falls back to center.
func normalizeWindowPosition(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == domain.DefaultWindowPosition {
		return v
	}
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return domain.DefaultWindowPosition
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return domain.DefaultWindowPosition
	}
	return fmt.Sprintf("%d,%d", x, y)
}

func normalizeHistory(history domain.HistorySettings) (domain.HistorySettings, error) {
	switch {
	case history.MaxEntries == 0:
		history.MaxEntries = domain.DefaultMaxHistoryEntries
	case history.MaxEntries < 0:
		return history, fmt.Errorf("history.max_entries must be > 0, got %d", history.MaxEntries)
	}
	switch strings.ToLower(strings.TrimSpace(history.Backend)) {
	case "":
		history.Backend = domain.DefaultHistoryBackend
	case domain.HistoryBackendSQLite:
		history.Backend = domain.HistoryBackendSQLite
	case domain.HistoryBackendFile:
		history.Backend = domain.HistoryBackendFile
	default:
		return history, fmt.Errorf("history.backend must be sqlite|file, got %s", history.Backend)
	}
	return history, nil
}
