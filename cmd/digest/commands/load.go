package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/digest/internal/core/domain"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load one month payload through the cache tiers",
		Long: "Load one month payload through the memory, persistent and network tiers, " +
			"bypassing the manifest. Useful together with --stats to inspect cache behavior.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, _ := cmd.Flags().GetString("month")
			path, _ := cmd.Flags().GetString("path")
			revision, _ := cmd.Flags().GetString("revision")
			viewName, _ := cmd.Flags().GetString("view")

			if month == "" {
				return domain.ErrMissingMonth
			}
			view, err := domain.ParseView(viewName)
			if err != nil {
				return err
			}
			if path == "" {
				path = "digest/" + month + "/" + domain.MonthPayloadFile
			}

			payload, err := c.app.LoadPayload(cmd.Context(), domain.LoadRequest{
				Month:      month,
				SourcePath: path,
				View:       view,
				Revision:   revision,
			})
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), payload)
			}
			writePayload(cmd.OutOrStdout(), payload)
			return nil
		},
	}
	cmd.Flags().StringP("month", "m", "", "Month key (YYYY-MM)")
	cmd.Flags().StringP("path", "p", "", "Payload path as listed in the manifest (default digest/<month>/papers.json)")
	cmd.Flags().StringP("revision", "r", "", "Month revision; blank selects the legacy bucket")
	cmd.Flags().String("view", string(domain.ViewHome), "Requesting view: home, month or explore")
	return cmd
}
