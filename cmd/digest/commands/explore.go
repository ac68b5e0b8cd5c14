package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/digest/internal/engine/query"
)

func (c *CLI) newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Search papers across every published month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := parseQuery(cmd)
			if err != nil {
				return err
			}
			q.Month, _ = cmd.Flags().GetString("month")

			view, err := c.app.Explore(cmd.Context(), q)
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			writeExplore(cmd.OutOrStdout(), view)
			return nil
		},
	}
	queryFlags(cmd)
	cmd.Flags().StringP("month", "m", query.AllMonths, "Restrict results to one month key, or all")
	return cmd
}
