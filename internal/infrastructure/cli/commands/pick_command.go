package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/cli/helpers"
)

const (
	pickDirectoryKey = "pick_directory"
	pickCustomDirKey = "pick_custom_directory"
	pickCommandKey   = "pick_command"

	// otherDirectory is the select value that switches to free-form input.
	otherDirectory = "\x00other"
)

// stdinIsTerminal reports whether the picker can take over the terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewPickCommand asks for a directory and command interactively, then launches.
func NewPickCommand(container *app.Container) *cobra.Command {
	var terminalOverride string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a recent directory and command interactively, then launch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return errors.New(ErrNotATerminal)
			}
			if container.LaunchService == nil {
				return fmt.Errorf(ErrLaunchServiceUnavailable)
			}
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var recent []domain.DirectoryEntry
			if container.HistoryStore != nil {
				if recent, err = container.HistoryStore.RecentDirectories(cfg.HistoryLimit()); err != nil {
					container.Logger.Warn("recent directories unavailable", map[string]interface{}{"error": err.Error()})
				}
			}

			dir, command, err := runPicker(recent, cfg.LastDirectory, cfg.LastCommand)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), MsgPickCancelled)
					return nil
				}
				return err
			}

			req := cfg.ApplyDefaults(domain.LaunchRequest{
				Directory:        dir,
				Command:          command,
				TerminalOverride: terminalOverride,
			})
			res, err := container.LaunchService.Launch(req)
			if err != nil {
				return err
			}
			if err := helpers.RememberLaunch(cmd.Context(), container, req.Directory, req.Command); err != nil {
				container.Logger.Warn("could not remember launch", map[string]interface{}{"error": err.Error()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Launched %s (pid %d)\n", res.Terminal, res.PID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&terminalOverride, "terminal", "t", "", "Terminal id, see `termdrop terminals`")
	return cmd
}

// newDirectoryChoiceForm offers the recent directories plus an "Other" entry.
func newDirectoryChoiceForm(recent []domain.DirectoryEntry, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(recent)+1)
	for _, entry := range recent {
		label := fmt.Sprintf("%s  (%dx, %s)", entry.Path, entry.UsageCount, entry.LastUsed.Local().Format(TimestampFormat))
		options = append(options, huh.NewOption(label, entry.Path))
	}
	options = append(options, huh.NewOption("Other directory...", otherDirectory))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key(pickDirectoryKey).
				Title("Directory").
				Options(options...).
				Value(choice),
		),
	).WithShowHelp(false)
}

// newLaunchForm asks for the command, and for the directory when askDir is set.
func newLaunchForm(dir *string, command *string, askDir bool) *huh.Form {
	var fields []huh.Field
	if askDir {
		fields = append(fields, huh.NewInput().
			Key(pickCustomDirKey).
			Title("Directory").
			Inline(true).
			Prompt("> ").
			Value(dir))
	}
	fields = append(fields, huh.NewInput().
		Key(pickCommandKey).
		Title("Command").
		Inline(true).
		Prompt("> ").
		Value(command))

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// runPicker drives the two forms and returns the chosen directory and command.
func runPicker(recent []domain.DirectoryEntry, dir, command string) (string, string, error) {
	askDir := true
	if len(recent) > 0 {
		choice := recent[0].Path
		if err := newDirectoryChoiceForm(recent, &choice).Run(); err != nil {
			return "", "", err
		}
		if choice != otherDirectory {
			askDir = false
			dir = choice
			for _, entry := range recent {
				if entry.Path == choice && entry.LastCommand != "" {
					command = entry.LastCommand
				}
			}
		}
	}
	if err := newLaunchForm(&dir, &command, askDir).Run(); err != nil {
		return "", "", err
	}
	return dir, command, nil
}
