package commands

// CLI-specific constants
const (
	// DefaultHistoryLimit is the default number of entries shown by history commands
	DefaultHistoryLimit = 15
	// TimestampFormat renders history timestamps in local time
	TimestampFormat = "2006-01-02 15:04"
	// TopUsageLimit bounds the lists printed by `history stats`
	TopUsageLimit = 5
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrLaunchServiceUnavailable = "launch service unavailable"
	ErrKeyRequired              = "--key is required"
	ErrNotATerminal             = "pick needs an interactive terminal; use `termdrop launch` instead"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgPickCancelled            = "Cancelled."
)
