// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The launch core (detector, selector, builder, launcher) lives behind these
// contracts so the application services can be exercised with stubs and the
// infrastructure adapters can be swapped per platform.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., EnvironmentProvider, ProcessLauncher)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/termdrop/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.termdrop/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigStore is a ConfigProvider that can also persist changes.
type ConfigStore interface {
	ConfigProvider
	Save(domain.Config) error
	Path() string
}

// EnvironmentDetector inspects the host session and probes for terminals.
// Detection never fails; unknown signals degrade to SessionUnknown.
type EnvironmentDetector interface {
	Detect() domain.EnvironmentContext
}

// EnvironmentProvider hands out the current environment snapshot.
// Refresh re-runs detection explicitly; there is no implicit expiry.
type EnvironmentProvider interface {
	Snapshot() domain.EnvironmentContext
	Refresh() domain.EnvironmentContext
}

// TerminalSelector chooses a terminal from a snapshot, honouring an override.
type TerminalSelector interface {
	Select(env domain.EnvironmentContext, override string) (domain.TerminalDescriptor, error)
}

// ShellResolver picks the shell that runs inside the terminal window.
type ShellResolver interface {
	Resolve(override string) domain.ShellProfile
}

// CommandBuilder validates a request and turns it into an argument vector.
type CommandBuilder interface {
	Validate(req domain.LaunchRequest) (dir string, words []string, err error)
	Build(req domain.LaunchRequest, terminal domain.TerminalDescriptor, shell domain.ShellProfile) (domain.Invocation, error)
}

// ProcessLauncher spawns an invocation as a detached process.
type ProcessLauncher interface {
	Launch(inv domain.Invocation) (domain.LaunchResult, error)
}

// HistoryRepository persists launch attempts and derives recent directories.
type HistoryRepository interface {
	Save(record domain.LaunchRecord) error
	Records(limit int) ([]domain.LaunchRecord, error)
	RecentDirectories(limit int) ([]domain.DirectoryEntry, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
