package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/termdrop/internal/app"
	"github.com/doeshing/termdrop/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// Execute runs the command line in args and releases the history store
// afterwards, whether or not the command succeeded.
func Execute(ctx context.Context, opts Options, args []string) error {
	container := &app.Container{}
	root := newRootCmd(ctx, opts, container)
	root.SetArgs(args)
	return execute(ctx, root, container)
}

// newRootCmd builds the command tree around container. Subcommands share
// the container, which is filled in once flags are parsed so --config is
// honoured by every command.
func newRootCmd(ctx context.Context, opts Options, container *app.Container) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "termdrop",
		Short: "Open a terminal window in a directory and run a command",
		Long:  "termdrop detects the desktop session, picks an installed terminal and launches a command in it.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(ctx, app.Options{
				Verbose:    opts.Verbose || verbose,
				ConfigPath: configPath,
			})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: $TERMDROP_CONFIG or ~/.termdrop/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(commands.NewLaunchCommand(container))
	root.AddCommand(commands.NewPickCommand(container))
	root.AddCommand(commands.NewTerminalsCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}

// execute runs root and closes the history store. cobra skips post-run
// hooks when a command fails, so the close cannot live in one.
func execute(ctx context.Context, root *cobra.Command, container *app.Container) error {
	err := root.ExecuteContext(ctx)
	if closer, ok := container.HistoryStore.(io.Closer); ok {
		if closeErr := closer.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}
	return err
}
