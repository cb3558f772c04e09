package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/secwatch/sirt/domain/entity"
)

func renderIncidentTable(w io.Writer, incidents []entity.Incident) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tRISK\tSTATUS\tREPORTED\tASSIGNED TO")
	for _, incident := range incidents {
		id := "-"
		if incident.ID != nil {
			id = fmt.Sprintf("%d", *incident.ID)
		}
		assignedTo := incident.AssignedTo
		if assignedTo == "" {
			assignedTo = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			id,
			incident.Title,
			incident.Type,
			incident.Risk,
			incident.Status,
			incident.ReportedDate.Format(time.DateTime),
			assignedTo,
		)
	}
	tw.Flush()
}

func renderIncident(w io.Writer, incident *entity.Incident) {
	renderIncidentTable(w, []entity.Incident{*incident})
	if incident.Description != "" {
		fmt.Fprintf(w, "\nDescription:\n%s\n", incident.Description)
	}
	if incident.ResolutionNotes != "" {
		fmt.Fprintf(w, "\nResolution notes:\n%s\n", incident.ResolutionNotes)
	}
}
