package domain

// ExecStyle describes how a terminal emulator accepts the program it should run.
type ExecStyle int

const (
	// ExecInlineArgs appends the program argv after an optional separator (ExecFlag), e.g. `gnome-terminal -- sh -c ...`.
	ExecInlineArgs ExecStyle = iota
	// ExecExecuteFlag passes the program argv after an execute flag, e.g. `xterm -e sh -c ...`.
	ExecExecuteFlag
	// ExecShellDashC passes the whole program as one string that the terminal splits itself, e.g. `lxterminal -e "..."`.
	ExecShellDashC
	// ExecAppleScript drives the terminal through osascript; the command becomes an AppleScript string literal.
	ExecAppleScript
)

func (s ExecStyle) String() string {
	switch s {
	case ExecInlineArgs:
		return "inline-args"
	case ExecExecuteFlag:
		return "execute-flag"
	case ExecShellDashC:
		return "shell-dash-c"
	case ExecAppleScript:
		return "applescript"
	default:
		return "unknown"
	}
}

// NativeEscape names terminal-specific escaping applied to raw argv tokens.
type NativeEscape int

const (
	NativeEscapeNone NativeEscape = iota
	// NativeEscapeWindowsTerminal escapes ';', which wt.exe treats as its own sub-command separator.
	NativeEscapeWindowsTerminal
)

// WorkdirPlaceholder marks where the directory goes in a single-token WorkdirFlag.
const WorkdirPlaceholder = "{dir}"

// TerminalDescriptor is one row of the static terminal registry.
type TerminalDescriptor struct {
	ID          string
	DisplayName string
	Binary      string
	Platforms   []string
	ProbePaths  []string
	Prefix      []string
	// WorkdirFlag is empty (no flag, the shell line cds instead), a flag taking the
	// directory as the next token, or a template containing WorkdirPlaceholder.
	WorkdirFlag  string
	Style        ExecStyle
	ExecFlag     string
	HoldOpenFlag string
	// AppleScript is a fmt template with a single %s receiving an escaped string literal body.
	AppleScript  string
	NativeEscape NativeEscape
}

// HoldOpenSupported reports whether the terminal has its own keep-open flag.
func (t TerminalDescriptor) HoldOpenSupported() bool {
	return t.HoldOpenFlag != ""
}

// SetsWorkdir reports whether the terminal changes directory itself.
func (t TerminalDescriptor) SetsWorkdir() bool {
	return t.WorkdirFlag != ""
}

// SupportsPlatform reports whether the terminal is catalogued for goos.
func (t TerminalDescriptor) SupportsPlatform(goos string) bool {
	for _, p := range t.Platforms {
		if p == goos {
			return true
		}
	}
	return false
}
