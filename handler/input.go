package handler

import "time"

// IncidentInput is what the presentation layer collects from a user. The
// incident core trusts it only after validation here.
type IncidentInput struct {
	Title           string `validate:"required"`
	Description     string `validate:"required"`
	Type            string `validate:"required,oneof=PHISHING MALWARE DATA_BREACH UNAUTHORIZED_ACCESS DDOS OTHER"`
	Risk            string `validate:"required,oneof=CRITICAL HIGH MEDIUM LOW"`
	Status          string `validate:"required,oneof=NEW IN_PROGRESS RESOLVED CLOSED"`
	ReportedDate    time.Time
	AssignedTo      string
	ResolutionNotes string
}
