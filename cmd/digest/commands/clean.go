package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/digest/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clear cached month payloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			memory, _ := cmd.Flags().GetBool("memory")
			persistent, _ := cmd.Flags().GetBool("persistent")
			stats, _ := cmd.Flags().GetBool("reset-stats")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Memory:     memory,
				Persistent: persistent,
				Stats:      stats,
			}
			switch {
			case all:
				opts = app.CleanOptions{Memory: true, Persistent: true, Stats: true}
			case !memory && !persistent && !stats:
				// Default behavior: drop every cached payload
				opts.Memory = true
				opts.Persistent = true
			}

			res := c.app.ClearCache(cmd.Context(), opts)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			writeClean(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().Bool("memory", false, "Clear the in-memory tier")
	cmd.Flags().Bool("persistent", false, "Remove payloads from both persistent tiers")
	cmd.Flags().Bool("reset-stats", false, "Reset the cache statistics")
	cmd.Flags().BoolP("all", "a", false, "Clear every tier and reset the statistics")

	return cmd
}
