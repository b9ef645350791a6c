package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/termdrop/internal/version"
)

// NewVersionCommand prints build metadata; --short prints only the version.
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print termdrop build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return nil
			}
			writeBuildInfo(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print the version number only")
	return cmd
}

func writeBuildInfo(out io.Writer) {
	fmt.Fprintf(out, "termdrop version %s", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, " (%s)", version.Commit)
	}
	fmt.Fprintln(out)
	if version.BuildDate != "" {
		fmt.Fprintf(out, "built %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
