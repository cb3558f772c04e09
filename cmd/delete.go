package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an incident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid incident id %q: %w", args[0], err)
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			h.DeleteIncident(ctx, id)
			fmt.Fprintf(cmd.OutOrStdout(), "incident %d deleted\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
