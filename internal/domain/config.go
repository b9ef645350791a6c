package domain

// Config mirrors ~/.termdrop/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version" json:"config_format_version"`
	Hotkey              string          `yaml:"hotkey" json:"hotkey"`
	WindowPosition      string          `yaml:"window_position" json:"window_position"`
	LastDirectory       string          `yaml:"last_directory" json:"last_directory"`
	LastCommand         string          `yaml:"last_command" json:"last_command"`
	Launch              LaunchSettings  `yaml:"launch" json:"launch"`
	History             HistorySettings `yaml:"history" json:"history"`
}

// LaunchSettings holds the user's terminal and shell preferences.
type LaunchSettings struct {
	Terminal string `yaml:"terminal" json:"terminal"`
	Shell    string `yaml:"shell" json:"shell"`
}

// HistorySettings controls launch history persistence.
type HistorySettings struct {
	MaxEntries int    `yaml:"max_entries" json:"max_entries"`
	Backend    string `yaml:"backend" json:"backend"`
}
