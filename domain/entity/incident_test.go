package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secwatch/sirt/domain/entity"
)

func TestParseIncidentType(t *testing.T) {
	for _, incidentType := range entity.IncidentTypes() {
		parsed, err := entity.ParseIncidentType(string(incidentType))
		require.NoError(t, err)
		assert.Equal(t, incidentType, parsed)
	}

	_, err := entity.ParseIncidentType("RANSOMWARE")
	assert.Error(t, err)
	_, err = entity.ParseIncidentType("phishing")
	assert.Error(t, err, "tags are case-sensitive")
}

func TestParseRisk(t *testing.T) {
	for _, risk := range entity.Risks() {
		parsed, err := entity.ParseRisk(string(risk))
		require.NoError(t, err)
		assert.Equal(t, risk, parsed)
	}

	_, err := entity.ParseRisk("SEVERE")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, status := range entity.Statuses() {
		parsed, err := entity.ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := entity.ParseStatus("DONE")
	assert.Error(t, err)
}

func TestRisksOrderedBySeverity(t *testing.T) {
	assert.Equal(t, []entity.Risk{entity.RiskCritical, entity.RiskHigh, entity.RiskMedium, entity.RiskLow}, entity.Risks())
}
