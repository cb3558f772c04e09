package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search incidents by keyword",
	Long:  "Case-insensitive substring match over id, title, description and assignee. Without a keyword, lists everything.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := ""
		if len(args) == 1 {
			keyword = args[0]
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			renderIncidentTable(cmd.OutOrStdout(), h.SearchIncidents(ctx, keyword))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
