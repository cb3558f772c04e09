package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/secwatch/sirt/handler"
)

type incidentFlags struct {
	title           string
	description     string
	incidentType    string
	risk            string
	status          string
	reportedDate    string
	assignedTo      string
	resolutionNotes string
}

func (f *incidentFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.title, "title", "", "incident title")
	flags.StringVar(&f.description, "description", "", "what happened")
	flags.StringVar(&f.incidentType, "type", "", "PHISHING, MALWARE, DATA_BREACH, UNAUTHORIZED_ACCESS, DDOS or OTHER")
	flags.StringVar(&f.risk, "risk", "MEDIUM", "CRITICAL, HIGH, MEDIUM or LOW")
	flags.StringVar(&f.status, "status", "NEW", "NEW, IN_PROGRESS, RESOLVED or CLOSED")
	flags.StringVar(&f.reportedDate, "reported", "", "reported date, RFC3339 (defaults to now)")
	flags.StringVar(&f.assignedTo, "assigned-to", "", "who handles the incident")
	flags.StringVar(&f.resolutionNotes, "notes", "", "resolution notes")
}

func (f *incidentFlags) toInput() (*handler.IncidentInput, error) {
	input := &handler.IncidentInput{
		Title:           f.title,
		Description:     f.description,
		Type:            f.incidentType,
		Risk:            f.risk,
		Status:          f.status,
		AssignedTo:      f.assignedTo,
		ResolutionNotes: f.resolutionNotes,
	}
	if f.reportedDate != "" {
		reported, err := time.Parse(time.RFC3339, f.reportedDate)
		if err != nil {
			return nil, fmt.Errorf("invalid reported date %q: %w", f.reportedDate, err)
		}
		input.ReportedDate = reported
	}
	return input, nil
}

var addFlags incidentFlags

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Report a new incident",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := addFlags.toInput()
		if err != nil {
			return err
		}
		return withHandler(func(ctx context.Context, h *handler.IncidentHandler) error {
			incident, err := h.CreateIncident(ctx, input)
			if err != nil {
				return err
			}
			renderIncident(cmd.OutOrStdout(), incident)
			return nil
		})
	},
}

func init() {
	addFlags.register(addCmd.Flags())
	rootCmd.AddCommand(addCmd)
}
