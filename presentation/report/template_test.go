package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/secwatch/sirt/presentation/report"
)

func reportedIncident() *entity.Incident {
	id := int64(7)
	return &entity.Incident{
		ID:              &id,
		Title:           "Data exfiltration via misconfigured bucket",
		Description:     "Public read on a backup bucket",
		Type:            entity.IncidentTypeDataBreach,
		Risk:            entity.RiskCritical,
		Status:          entity.StatusInProgress,
		ReportedDate:    time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		AssignedTo:      "Alice",
		ResolutionNotes: "",
	}
}

func TestRender(t *testing.T) {
	out := report.Render(reportedIncident())

	assert.Contains(t, out, "# Data exfiltration via misconfigured bucket")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "DATA_BREACH")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "IN_PROGRESS")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "none", "empty resolution notes render a placeholder")
}

func TestRenderUnpersistedIncident(t *testing.T) {
	incident := reportedIncident()
	incident.ID = nil
	incident.AssignedTo = ""

	out := report.Render(incident)
	assert.Contains(t, out, "unassigned")
}

func TestRenderHTML(t *testing.T) {
	incident := reportedIncident()
	incident.Description = `<script>alert("x")</script>Public read on a backup bucket`

	out := report.RenderHTML(incident)
	assert.Contains(t, out, "<h1>")
	assert.Contains(t, out, "Public read on a backup bucket")
	assert.NotContains(t, out, "<script>", "user-supplied markup is sanitized")
}
