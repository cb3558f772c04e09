package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single incident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid incident id %q: %w", args[0], err)
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			incident := h.GetIncident(ctx, id)
			if incident == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "incident %d not found\n", id)
				return nil
			}
			renderIncident(cmd.OutOrStdout(), incident)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
