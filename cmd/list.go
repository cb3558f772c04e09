package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all incidents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			renderIncidentTable(cmd.OutOrStdout(), h.ListIncidents(ctx))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
