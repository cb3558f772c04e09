package entity

import (
	"fmt"
	"time"
)

type IncidentType string

const (
	IncidentTypePhishing           IncidentType = "PHISHING"
	IncidentTypeMalware            IncidentType = "MALWARE"
	IncidentTypeDataBreach         IncidentType = "DATA_BREACH"
	IncidentTypeUnauthorizedAccess IncidentType = "UNAUTHORIZED_ACCESS"
	IncidentTypeDDoS               IncidentType = "DDOS"
	IncidentTypeOther              IncidentType = "OTHER"
)

// Risk levels, most severe first.
type Risk string

const (
	RiskCritical Risk = "CRITICAL"
	RiskHigh     Risk = "HIGH"
	RiskMedium   Risk = "MEDIUM"
	RiskLow      Risk = "LOW"
)

type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

func IncidentTypes() []IncidentType {
	return []IncidentType{
		IncidentTypePhishing,
		IncidentTypeMalware,
		IncidentTypeDataBreach,
		IncidentTypeUnauthorizedAccess,
		IncidentTypeDDoS,
		IncidentTypeOther,
	}
}

func Risks() []Risk {
	return []Risk{RiskCritical, RiskHigh, RiskMedium, RiskLow}
}

func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusResolved, StatusClosed}
}

// ParseIncidentType maps a stored tag back to its type. Unknown tags are an
// error so that corrupt rows surface as storage failures instead of panics.
func ParseIncidentType(tag string) (IncidentType, error) {
	for _, t := range IncidentTypes() {
		if string(t) == tag {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown incident type %q", tag)
}

func ParseRisk(tag string) (Risk, error) {
	for _, r := range Risks() {
		if string(r) == tag {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown risk %q", tag)
}

func ParseStatus(tag string) (Status, error) {
	for _, s := range Statuses() {
		if string(s) == tag {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", tag)
}

type Incident struct {
	// ID is nil until storage assigns an identity, and immutable after that.
	ID              *int64       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Type            IncidentType `json:"type"`
	Risk            Risk         `json:"risk"`
	Status          Status       `json:"status"`
	ReportedDate    time.Time    `json:"reported_date"`
	AssignedTo      string       `json:"assigned_to"`
	ResolutionNotes string       `json:"resolution_notes"`
}
