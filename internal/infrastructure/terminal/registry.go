package terminal

import (
	"github.com/doeshing/termdrop/internal/domain"
)

var (
	unixLike = []string{"linux", "freebsd", "openbsd", "netbsd", "dragonfly"}
	unixMac  = []string{"linux", "freebsd", "openbsd", "netbsd", "dragonfly", "darwin"}
	macOnly  = []string{"darwin"}
	winOnly  = []string{"windows"}
)

// registry is the static catalogue of supported terminals. Order matters: it
// is the order Available is reported in.
var registry = []domain.TerminalDescriptor{
	{ID: "gnome-terminal", DisplayName: "GNOME Terminal", Binary: "gnome-terminal", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecInlineArgs, ExecFlag: "--"},
	{ID: "kgx", DisplayName: "GNOME Console", Binary: "kgx", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecInlineArgs, ExecFlag: "--"},
	{ID: "konsole", DisplayName: "Konsole", Binary: "konsole", Platforms: unixLike,
		WorkdirFlag: "--workdir", Style: domain.ExecExecuteFlag, ExecFlag: "-e", HoldOpenFlag: "--hold"},
	{ID: "xfce4-terminal", DisplayName: "Xfce Terminal", Binary: "xfce4-terminal", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecExecuteFlag, ExecFlag: "-x", HoldOpenFlag: "--hold"},
	{ID: "mate-terminal", DisplayName: "MATE Terminal", Binary: "mate-terminal", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecExecuteFlag, ExecFlag: "-x"},
	{ID: "tilix", DisplayName: "Tilix", Binary: "tilix", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecShellDashC, ExecFlag: "-e"},
	{ID: "terminator", DisplayName: "Terminator", Binary: "terminator", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecExecuteFlag, ExecFlag: "-x"},
	{ID: "lxterminal", DisplayName: "LXTerminal", Binary: "lxterminal", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecShellDashC, ExecFlag: "-e"},
	{ID: "alacritty", DisplayName: "Alacritty", Binary: "alacritty", Platforms: unixMac,
		WorkdirFlag: "--working-directory", Style: domain.ExecExecuteFlag, ExecFlag: "-e", HoldOpenFlag: "--hold"},
	{ID: "kitty", DisplayName: "kitty", Binary: "kitty", Platforms: unixMac,
		WorkdirFlag: "--directory", Style: domain.ExecInlineArgs, HoldOpenFlag: "--hold"},
	{ID: "foot", DisplayName: "foot", Binary: "foot", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecInlineArgs, HoldOpenFlag: "--hold"},
	{ID: "wezterm", DisplayName: "WezTerm", Binary: "wezterm", Platforms: unixMac, Prefix: []string{"start"},
		WorkdirFlag: "--cwd", Style: domain.ExecInlineArgs, ExecFlag: "--"},
	{ID: "ghostty", DisplayName: "Ghostty", Binary: "ghostty", Platforms: unixLike,
		WorkdirFlag: "--working-directory={dir}", Style: domain.ExecExecuteFlag, ExecFlag: "-e"},
	{ID: "x-terminal-emulator", DisplayName: "Default terminal (Debian alternatives)", Binary: "x-terminal-emulator", Platforms: unixLike,
		Style: domain.ExecExecuteFlag, ExecFlag: "-e"},
	{ID: "xterm", DisplayName: "XTerm", Binary: "xterm", Platforms: unixLike,
		Style: domain.ExecExecuteFlag, ExecFlag: "-e"},
	{ID: "terminal-app", DisplayName: "Terminal.app", Binary: "osascript", Platforms: macOnly,
		ProbePaths: []string{"/System/Applications/Utilities/Terminal.app", "/Applications/Utilities/Terminal.app"},
		Style:      domain.ExecAppleScript,
		AppleScript: "tell application \"Terminal\"\n" +
			"\tactivate\n" +
			"\tdo script %s\n" +
			"end tell"},
	{ID: "iterm", DisplayName: "iTerm2", Binary: "osascript", Platforms: macOnly,
		ProbePaths: []string{"/Applications/iTerm.app"},
		Style:      domain.ExecAppleScript,
		AppleScript: "tell application \"iTerm\"\n" +
			"\tactivate\n" +
			"\tset newWindow to (create window with default profile)\n" +
			"\ttell current session of newWindow to write text %s\n" +
			"end tell"},
	{ID: "wt", DisplayName: "Windows Terminal", Binary: "wt.exe", Platforms: winOnly,
		WorkdirFlag: "-d", Style: domain.ExecInlineArgs, NativeEscape: domain.NativeEscapeWindowsTerminal},
	{ID: "conhost", DisplayName: "Console Host", Binary: "conhost.exe", Platforms: winOnly,
		Style: domain.ExecInlineArgs},
}

// generic is the fallback order used after a session's own preferences and
// on its own for unknown sessions. It ends with the most universal terminal.
var generic = []string{
	"x-terminal-emulator",
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"mate-terminal",
	"tilix",
	"terminator",
	"lxterminal",
	"kgx",
	"alacritty",
	"kitty",
	"foot",
	"wezterm",
	"ghostty",
	"terminal-app",
	"iterm",
	"conhost",
	"wt",
	"xterm",
}

// sessionPreferences lists the terminals each desktop ships or favours.
var sessionPreferences = map[domain.SessionKind][]string{
	domain.SessionGNOME:    {"gnome-terminal", "kgx", "tilix", "terminator"},
	domain.SessionKDE:      {"konsole"},
	domain.SessionXFCE:     {"xfce4-terminal"},
	domain.SessionMATE:     {"mate-terminal"},
	domain.SessionLXDE:     {"lxterminal"},
	domain.SessionLXQt:     {"lxterminal"},
	domain.SessionCinnamon: {"gnome-terminal", "tilix"},
	domain.SessionBudgie:   {"tilix", "gnome-terminal"},
	domain.SessionSway:     {"foot", "alacritty", "kitty", "wezterm"},
	domain.SessionHyprland: {"kitty", "foot", "alacritty", "wezterm"},
	domain.SessionMacOS:    {"terminal-app", "iterm", "kitty", "alacritty", "wezterm"},
	domain.SessionWindows:  {"conhost", "wt"},
}

// Registry returns a copy of the terminal catalogue.
func Registry() []domain.TerminalDescriptor {
	out := make([]domain.TerminalDescriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a terminal by id.
func Lookup(id string) (domain.TerminalDescriptor, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return domain.TerminalDescriptor{}, false
}

// Preferences returns the ordered terminal ids to try for a session: its own
// list followed by the generic tail, without duplicates.
func Preferences(session domain.SessionKind) []string {
	head := sessionPreferences[session]
	out := make([]string, 0, len(head)+len(generic))
	seen := make(map[string]bool, len(head)+len(generic))
	for _, list := range [][]string{head, generic} {
		for _, id := range list {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
