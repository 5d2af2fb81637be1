package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
)

// NewListCommand returns the "list" command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Name", "Family", "Description", "Default input"})
			for _, a := range catalog.All() {
				tbl.AppendRow(table.Row{a.Name, a.Family, a.Description, a.Describe(a.Default())})
			}
			tbl.Render()
			return nil
		},
	}
}
