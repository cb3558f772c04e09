package blocks

import (
	"fmt"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/slack-go/slack"
)

func IncidentCreated(incident *entity.Incident) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", "🚨 A security incident has been reported", false, false),
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Title:* %s", incident.Title),
					false,
					false,
				),
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Type:* %s", incident.Type),
					false,
					false,
				),
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Risk:* %s", incident.Risk),
					false,
					false,
				),
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Assigned to:* %s", orUnassigned(incident.AssignedTo)),
					false,
					false,
				),
			},
			nil,
		),
	}
}

func orUnassigned(assignedTo string) string {
	if assignedTo == "" {
		return "unassigned"
	}
	return assignedTo
}
