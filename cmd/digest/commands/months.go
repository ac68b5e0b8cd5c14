package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List published months with accepted papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := c.app.Home(cmd.Context())
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			writeHome(cmd.OutOrStdout(), view)
			return nil
		},
	}
}
