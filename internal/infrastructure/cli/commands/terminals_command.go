package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/infrastructure/cli/helpers"
	"github.com/doeshing/termdrop/internal/infrastructure/terminal"
	"github.com/doeshing/termdrop/internal/ports"
)

// NewTerminalsCommand lists the terminals termdrop knows for this OS.
func NewTerminalsCommand(container *app.Container) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "terminals",
		Short: "List supported terminals and which one would be used",
		RunE: func(cmd *cobra.Command, args []string) error {
			var env domain.EnvironmentContext
			if refresh {
				env = container.Environment.Refresh()
			} else {
				env = container.Environment.Snapshot()
			}
			override := ""
			if cfg, err := container.ConfigProvider.Load(cmd.Context()); err == nil {
				override = cfg.Launch.Terminal
			}
			renderTerminals(cmd.OutOrStdout(), env, container.Selector, override)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-run detection instead of using the cached snapshot")
	return cmd
}

func renderTerminals(out io.Writer, env domain.EnvironmentContext, selector ports.TerminalSelector, override string) {
	fmt.Fprintf(out, "%s %s", helpers.HeaderStyle.Render("Session:"), env.Session)
	if env.DisplayServer != "" {
		fmt.Fprintf(out, " (%s)", env.DisplayServer)
	}
	fmt.Fprintln(out)

	selectedID := ""
	selected, err := selector.Select(env, override)
	if err == nil {
		selectedID = selected.ID
	}

	for _, t := range terminal.Registry() {
		if !t.SupportsPlatform(runtime.GOOS) {
			continue
		}
		line := fmt.Sprintf("  %-20s %s", t.ID, t.DisplayName)
		switch {
		case t.ID == selectedID:
			fmt.Fprintln(out, helpers.SelectedStyle.Render(line+"  (selected)"))
		case env.Has(t.ID):
			fmt.Fprintln(out, helpers.OKStyle.Render(line))
		default:
			fmt.Fprintln(out, helpers.SecondaryStyle.Render(line+"  (not found)"))
		}
	}

	if err != nil {
		fmt.Fprintln(out, helpers.ErrorStyle.Render("No terminal selected: "+err.Error()))
	}
}
