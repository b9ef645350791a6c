package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Defaults
const (
	DefaultCommand           = "claude"
	DefaultHotkey            = "ctrl+alt+c"
	DefaultWindowPosition    = "center"
	DefaultMaxHistoryEntries = 15
	DefaultHistoryBackend    = HistoryBackendSQLite
)

// History backends
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendFile   = "file"
)
