package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/cli/helpers"
)

// NewLaunchCommand opens a terminal in a directory running a command.
func NewLaunchCommand(container *app.Container) *cobra.Command {
	var (
		req    domain.LaunchRequest
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Open a terminal in a directory and run a command",
		Long: "Open a new terminal window in --dir and run --cmd. Missing values come from the\n" +
			"last launch stored in the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.LaunchService == nil {
				return fmt.Errorf(ErrLaunchServiceUnavailable)
			}
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			full := cfg.ApplyDefaults(req)
			if full.Directory == "" {
				if full.Directory, err = os.Getwd(); err != nil {
					return fmt.Errorf("resolve working directory: %w", err)
				}
			}

			if dryRun {
				inv, err := container.LaunchService.Preview(full)
				if err != nil {
					return err
				}
				renderInvocation(cmd.OutOrStdout(), inv)
				return nil
			}

			res, err := container.LaunchService.Launch(full)
			if err != nil {
				return err
			}
			if err := helpers.RememberLaunch(cmd.Context(), container, full.Directory, full.Command); err != nil {
				container.Logger.Warn("could not remember launch", map[string]interface{}{"error": err.Error()})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Launched %s (pid %d)\n", res.Terminal, res.PID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Directory, "dir", "d", "", "Working directory (default: last directory, then the current one)")
	cmd.Flags().StringVarP(&req.Command, "cmd", "c", "", "Command to run (default: last command)")
	cmd.Flags().StringVarP(&req.TerminalOverride, "terminal", "t", "", "Terminal id, see `termdrop terminals`")
	cmd.Flags().StringVarP(&req.ShellOverride, "shell", "s", "", "Shell to run inside the terminal")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the argument vector instead of launching")
	return cmd
}

// renderInvocation prints one argv element per line so embedded quotes and
// newlines stay visible.
func renderInvocation(out io.Writer, inv domain.Invocation) {
	fmt.Fprintf(out, "%s %s\n", helpers.HeaderStyle.Render("Terminal:"), inv.Terminal)
	fmt.Fprintf(out, "%s %s\n", helpers.HeaderStyle.Render("Shell:"), inv.Shell)
	fmt.Fprintf(out, "%s %s\n", helpers.HeaderStyle.Render("Directory:"), inv.Dir)
	fmt.Fprintln(out, helpers.HeaderStyle.Render("Argv:"))
	for i, arg := range inv.Argv {
		fmt.Fprintf(out, "  [%d] %s\n", i, strings.ReplaceAll(arg, "\n", `\n`))
	}
}
