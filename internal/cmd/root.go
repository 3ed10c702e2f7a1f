// Package cmd wires the conslog CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is the current version of the conslog application.
var Version = "0.1.0"

// NewRootCommand creates the root conslog command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conslog",
		Short: "Translated console diagnostics with file transcripts",
		Long: `Conslog collects structured diagnostics, renders them to the terminal
with severity-based coloring, translates entry text into the configured
language at render time, and mirrors the colorless transcript into log
files.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCheckCommand())

	return cmd
}
