package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/secwatch/sirt/handler"
)

var (
	filterStatus string
	filterRisk   string
	filterType   string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter incidents by status, risk and type",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			incidents, err := h.FilterIncidents(ctx, filterStatus, filterRisk, filterType)
			if err != nil {
				return err
			}
			renderIncidentTable(cmd.OutOrStdout(), incidents)
			return nil
		})
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterStatus, "status", "", "NEW, IN_PROGRESS, RESOLVED or CLOSED")
	filterCmd.Flags().StringVar(&filterRisk, "risk", "", "CRITICAL, HIGH, MEDIUM or LOW")
	filterCmd.Flags().StringVar(&filterType, "type", "", "PHISHING, MALWARE, DATA_BREACH, UNAUTHORIZED_ACCESS, DDOS or OTHER")
	rootCmd.AddCommand(filterCmd)
}
