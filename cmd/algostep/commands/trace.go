package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/render"
)

// NewTraceCommand returns the "trace" command.
func NewTraceCommand() *cobra.Command {
	var (
		in        inputFlags
		color     bool
		snapshots bool
	)
	cmd := &cobra.Command{
		Use:       "trace [algorithm]",
		Short:     "Print the whole event sequence without pacing",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, input, p, err := in.resolve(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s | %s\n", a.Name, a.Describe(input))
			if in.random {
				fmt.Fprintf(out, "seed %d\n", in.seed)
			}

			r := render.NewText(out, render.WithColor(color), render.WithSnapshots(snapshots))
			n := 0
			for ev := range p.Steps() {
				if err := r.OnStep(cmd.Context(), ev, p.Snapshot()); err != nil {
					return err
				}
				n++
			}
			fmt.Fprintf(out, "%d events\n", n)
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&color, "color", false, "colour event kinds")
	cmd.Flags().BoolVar(&snapshots, "snapshots", false, "print the container after each event")
	return cmd
}
