package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var updateFlags incidentFlags

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an incident's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid incident id %q: %w", args[0], err)
		}
		input, err := updateFlags.toInput()
		if err != nil {
			return err
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			incident, err := h.UpdateIncident(ctx, id, input)
			if err != nil {
				return err
			}
			renderIncident(cmd.OutOrStdout(), incident)
			return nil
		})
	},
}

func init() {
	updateFlags.register(updateCmd.Flags())
	rootCmd.AddCommand(updateCmd)
}
