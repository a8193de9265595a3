package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [month]",
		Short: "Print the snapshot for a month (YYYY-MM, default current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var month string
			if len(args) == 1 {
				month = args[0]
			}
			return c.app.Show(cmd.Context(), month)
		},
	}
}
