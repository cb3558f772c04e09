package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
	"github.com/secwatch/sirt/presentation/report"
)

var reportHTML bool

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Render an incident report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid incident id %q: %w", args[0], err)
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			incident := h.GetIncident(ctx, id)
			if incident == nil {
				return fmt.Errorf("incident %d not found", id)
			}
			if reportHTML {
				fmt.Fprintln(cmd.OutOrStdout(), report.RenderHTML(incident))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), report.Render(incident))
			}
			return nil
		})
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "render sanitized HTML instead of markdown")
	rootCmd.AddCommand(reportCmd)
}
