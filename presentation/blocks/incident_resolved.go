package blocks

import (
	"fmt"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/slack-go/slack"
)

func IncidentResolved(incident *entity.Incident) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn", "✅ Incident resolved", false, false),
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Title:* %s", incident.Title),
					false,
					false,
				),
				slack.NewTextBlockObject(
					"mrkdwn",
					fmt.Sprintf("*Resolution:* %s", orNone(incident.ResolutionNotes)),
					false,
					false,
				),
			},
			nil,
		),
	}
}

func orNone(notes string) string {
	if notes == "" {
		return "not recorded"
	}
	return notes
}
