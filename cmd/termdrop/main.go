package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/termdrop/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	if err := cli.Execute(ctx, opts, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hint := cli.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("TERMDROP_DEBUG"), "1") || strings.EqualFold(os.Getenv("TERMDROP_DEBUG"), "true")
}
