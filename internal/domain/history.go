package domain

import "time"

// Launch outcomes persisted in history.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// LaunchRecord captures one launch attempt.
type LaunchRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Directory string    `json:"directory"`
	Command   string    `json:"command"`
	Terminal  string    `json:"terminal"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
}

// DirectoryEntry is a recent directory derived from successful launches.
type DirectoryEntry struct {
	Path        string    `json:"path"`
	LastUsed    time.Time `json:"last_used"`
	UsageCount  int       `json:"usage_count"`
	LastCommand string    `json:"last_command"`
}
