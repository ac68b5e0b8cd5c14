package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Show the papers of one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuery(cmd)
			if err != nil {
				return err
			}
			view, err := c.app.Month(cmd.Context(), args[0], q)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			writeMonth(cmd.OutOrStdout(), view)
			return nil
		},
	}
	queryFlags(cmd)
	return cmd
}
