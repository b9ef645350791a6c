package domain

import "strings"

// RememberLaunch records the directory and command of a successful launch.
func (c *Config) RememberLaunch(directory, command string) {
	if directory != "" {
		c.LastDirectory = directory
	}
	if command = strings.TrimSpace(command); command != "" {
		c.LastCommand = command
	}
}

// ApplyDefaults fills an incomplete request from the stored preferences.
// Explicit request values always win.
func (c *Config) ApplyDefaults(req LaunchRequest) LaunchRequest {
	if strings.TrimSpace(req.Directory) == "" {
		req.Directory = c.LastDirectory
	}
	if strings.TrimSpace(req.Command) == "" {
		req.Command = c.LastCommand
	}
	if req.TerminalOverride == "" {
		req.TerminalOverride = strings.TrimSpace(c.Launch.Terminal)
	}
	if req.ShellOverride == "" {
		req.ShellOverride = strings.TrimSpace(c.Launch.Shell)
	}
	return req
}

// HistoryLimit returns the configured recent-directory cap.
func (c *Config) HistoryLimit() int {
	if c.History.MaxEntries <= 0 {
		return DefaultMaxHistoryEntries
	}
	return c.History.MaxEntries
}
