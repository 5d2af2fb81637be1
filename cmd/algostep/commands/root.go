// Package commands implements the algostep subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the algostep command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "algostep",
		Short: "Step through classic algorithms one event at a time",
		Long: `algostep runs sorting, searching, graph, dynamic programming, recursion,
tree and stack/queue algorithms as paced sequences of step events.

Commands:
  list   Show every algorithm with its default input
  trace  Print the full event sequence without pacing
  run    Play the sequence at the configured interval (text, tui or none)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(NewListCommand())
	root.AddCommand(NewTraceCommand())
	root.AddCommand(NewRunCommand())
	return root
}
