// Package command turns a launch request into the argument vector of a
// terminal emulator. One builder serves every registry row; the row's data
// decides the shape of the argv.
package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/shell"
	"github.com/doeshing/termdrop/internal/pkg/filesystem"
	"github.com/doeshing/termdrop/internal/ports"
)

// Builder implements ports.CommandBuilder.
type Builder struct {
	Stat     func(string) (os.FileInfo, error)
	Readable func(string) error
}

// NewBuilder returns a builder that checks directories on the real filesystem.
func NewBuilder() *Builder {
	return &Builder{Stat: os.Stat, Readable: readable}
}

// Validate normalizes the directory and splits the command into literal words.
func (b *Builder) Validate(req domain.LaunchRequest) (string, []string, error) {
	dir, err := b.validateDirectory(req.Directory)
	if err != nil {
		return "", nil, err
	}
	words, err := splitCommand(req.Command)
	if err != nil {
		return "", nil, err
	}
	return dir, words, nil
}

func (b *Builder) validateDirectory(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", "directory is empty", nil)
	}
	if strings.ContainsRune(raw, 0) {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", "directory contains a NUL byte", nil)
	}
	dir, err := filepath.Abs(filesystem.ExpandHome(raw))
	if err != nil {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", raw, err)
	}
	info, err := b.Stat(dir)
	if err != nil {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", fmt.Sprintf("%s: %v", dir, err), err)
	}
	if !info.IsDir() {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", dir+" is not a directory", nil)
	}
	if err := b.Readable(dir); err != nil {
		return "", domain.NewLaunchError(domain.ErrInvalidDirectory, "", "", fmt.Sprintf("%s is not readable: %v", dir, err), err)
	}
	return dir, nil
}

// splitCommand breaks the command into words. Each word is passed on
// literally; no shell syntax in the command is interpreted.
func splitCommand(raw string) ([]string, error) {
	if strings.ContainsRune(raw, 0) {
		return nil, domain.NewLaunchError(domain.ErrInvalidCommand, "", "", "command contains a NUL byte", nil)
	}
	words := domain.CommandWords(raw)
	if len(words) == 0 {
		return nil, domain.NewLaunchError(domain.ErrInvalidCommand, "", "", "command is empty", nil)
	}
	return words, nil
}

// Build validates the request and assembles the full argv for terminal.
func (b *Builder) Build(req domain.LaunchRequest, terminal domain.TerminalDescriptor, sh domain.ShellProfile) (domain.Invocation, error) {
	dir, words, err := b.Validate(req)
	if err != nil {
		return domain.Invocation{}, err
	}

	line := InnerLine(sh, dir, words, !terminal.SetsWorkdir())
	program := append([]string{sh.Path}, shellArgs(sh.Family, line)...)

	argv := []string{terminal.Binary}
	argv = append(argv, terminal.Prefix...)
	argv = append(argv, workdirTokens(terminal.WorkdirFlag, dir)...)
	if terminal.HoldOpenSupported() {
		argv = append(argv, terminal.HoldOpenFlag)
	}

	switch terminal.Style {
	case domain.ExecExecuteFlag:
		argv = append(argv, terminal.ExecFlag)
		argv = append(argv, program...)
	case domain.ExecInlineArgs:
		if terminal.ExecFlag != "" {
			argv = append(argv, terminal.ExecFlag)
		}
		argv = append(argv, program...)
	case domain.ExecShellDashC:
		argv = append(argv, terminal.ExecFlag, shell.JoinPortable(program))
	case domain.ExecAppleScript:
		script := fmt.Sprintf(terminal.AppleScript, shell.QuoteAppleScript(shell.JoinPortable(program)))
		argv = append(argv, "-e", script)
	default:
		return domain.Invocation{}, fmt.Errorf("terminal %s: unsupported exec style %s", terminal.ID, terminal.Style)
	}

	argv = nativeEscape(terminal.NativeEscape, argv)

	return domain.Invocation{
		Terminal: terminal.ID,
		Shell:    sh.Path,
		Argv:     argv,
		Dir:      dir,
	}, nil
}

// InnerLine is the command line the shell inside the window runs. When
// withCd is false the terminal has already entered dir.
func InnerLine(sh domain.ShellProfile, dir string, words []string, withCd bool) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = shell.Quote(sh.Family, w)
	}
	cmd := strings.Join(quoted, " ")

	switch sh.Chain {
	case domain.ChainPowerShell:
		invoke := "& " + cmd
		if !withCd {
			return invoke
		}
		return "Set-Location -LiteralPath " + shell.QuotePowerShell(dir) + "; if ($?) { " + invoke + " }"
	case domain.ChainFishAndSemicolon:
		line := cmd
		if withCd {
			line = "cd " + shell.QuoteFish(dir) + "; and " + cmd
		}
		return withExec(line, sh.ExecReplace)
	default:
		line := cmd
		if withCd {
			line = "cd " + shell.QuotePOSIX(dir) + " && " + cmd
		}
		return withExec(line, sh.ExecReplace)
	}
}

func withExec(line, execReplace string) string {
	if execReplace == "" {
		return line
	}
	return line + "; " + execReplace
}

func shellArgs(family domain.ShellFamily, line string) []string {
	if family == domain.ShellFamilyPowerShell {
		return []string{"-NoExit", "-Command", line}
	}
	return []string{"-c", line}
}

// workdirTokens renders the working-directory flag. The directory is passed
// raw: it is a single argv element and never reaches a shell.
func workdirTokens(flag, dir string) []string {
	switch {
	case flag == "":
		return nil
	case strings.Contains(flag, domain.WorkdirPlaceholder):
		return []string{strings.ReplaceAll(flag, domain.WorkdirPlaceholder, dir)}
	default:
		return []string{flag, dir}
	}
}

// nativeEscape applies the terminal's own argv escaping to everything after
// the binary.
func nativeEscape(kind domain.NativeEscape, argv []string) []string {
	if kind != domain.NativeEscapeWindowsTerminal {
		return argv
	}
	for i := 1; i < len(argv); i++ {
		argv[i] = strings.ReplaceAll(argv[i], ";", `\;`)
	}
	return argv
}

var _ ports.CommandBuilder = (*Builder)(nil)
