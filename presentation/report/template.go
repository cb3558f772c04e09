package report

import (
	"fmt"
	"time"

	"github.com/secwatch/sirt/domain/entity"
)

// Render produces a markdown incident report.
func Render(incident *entity.Incident) string {
	id := "unassigned"
	if incident.ID != nil {
		id = fmt.Sprintf("%d", *incident.ID)
	}
	assignedTo := incident.AssignedTo
	if assignedTo == "" {
		assignedTo = "unassigned"
	}
	resolutionNotes := incident.ResolutionNotes
	if resolutionNotes == "" {
		resolutionNotes = "none"
	}

	return fmt.Sprintf(`# %s

## Incident ID

%s

## Reported

%s

## Type

%s

## Risk

%s

## Status

%s

## Assigned To

%s

## Description

%s

## Resolution Notes

%s
`,
		incident.Title,
		id,
		incident.ReportedDate.Format(time.RFC3339),
		incident.Type,
		incident.Risk,
		incident.Status,
		assignedTo,
		incident.Description,
		resolutionNotes,
	)
}
