package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/transit/internal/app"
)

func (c *CLI) newScrubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub",
		Short: "Interactively scrub through months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Scrub(cmd.Context(), app.RunOptions{
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}
