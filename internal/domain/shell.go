package domain

// ShellFamily groups shells sharing quoting and chaining syntax.
type ShellFamily string

const (
	ShellFamilyPOSIX      ShellFamily = "posix"
	ShellFamilyFish       ShellFamily = "fish"
	ShellFamilyPowerShell ShellFamily = "powershell"
)

// ChainOperator selects how "cd" and the command are chained.
type ChainOperator int

const (
	// ChainAndSemicolon: `cd dir && cmd; exec shell`.
	ChainAndSemicolon ChainOperator = iota
	// ChainFishAndSemicolon: `cd dir; and cmd; exec shell`.
	ChainFishAndSemicolon
	// ChainPowerShell: `Set-Location -LiteralPath dir; if ($?) { & cmd }`.
	ChainPowerShell
)

// ShellProfile describes the shell that runs inside the new terminal window.
type ShellProfile struct {
	Path   string
	Name   string
	Family ShellFamily
	Chain  ChainOperator
	// ExecReplace re-execs the shell after the command so the window stays open.
	// Empty when the shell holds the window open through its own flag.
	ExecReplace string
}
