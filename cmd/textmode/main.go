// Command textmode demonstrates the textmode UI toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set via ldflags during build.
var (
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "textmode",
		Short:         "Retained-mode terminal UI toolkit demo",
		Long:          `textmode draws dialogs, lists and form widgets on a double-buffered screen and routes normalized keyboard and mouse input through a widget tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.textmode/config.yaml then ./.textmode/config.yaml)")

	root.AddCommand(
		newDemoCmd(&configPath),
		newKeysCmd(&configPath),
		newSnapshotCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textmode %s (commit %s, built %s)\n", version, commit, buildDate)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}
