package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/secwatch/sirt/domain/repository"
)

// ErrMissingID is returned by Update when the incident has never been
// persisted.
var ErrMissingID = errors.New("incident id is required")

// IncidentService owns the in-memory working set of incidents and keeps it in
// step with durable storage around each mutation. The working set is a
// snapshot: it may lag writes made by other processes until GetAll reloads it.
//
// Storage failures never surface as errors here. The repository absorbs and
// logs them, and callers see empty results or an unchanged working set
// instead.
type IncidentService struct {
	repo repository.IncidentRepository

	mu        sync.Mutex
	incidents []entity.Incident
}

func NewIncidentService(ctx context.Context, repo repository.IncidentRepository) *IncidentService {
	s := &IncidentService{repo: repo}
	s.GetAll(ctx)
	return s
}

// GetAll replaces the working set with a fresh read from storage and returns
// it. It is a refresh, not a cache read.
func (s *IncidentService) GetAll(ctx context.Context) []entity.Incident {
	incidents, err := s.repo.FindAll(ctx)
	if err != nil {
		slog.Warn("serving degraded incident list", slog.Any("error", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = incidents
	return snapshot(s.incidents)
}

// Add persists a new incident and appends it to the working set. The stored
// identity is attached to the returned incident; if storage could not produce
// one the incident is kept in memory without an id so the UI stays usable.
func (s *IncidentService) Add(ctx context.Context, incident entity.Incident) *entity.Incident {
	incident.ID = nil
	if incident.ReportedDate.IsZero() {
		incident.ReportedDate = time.Now()
	}

	id, err := s.repo.Add(ctx, &incident)
	if err == nil {
		incident.ID = &id
	} else {
		slog.Warn("incident kept in memory without a durable id", slog.String("title", incident.Title))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = append(s.incidents, incident)
	return &incident
}

// Update performs a whole-record replace keyed by id, in storage and then in
// the working set. If the id is not cached the working set is left unchanged;
// no reload is forced (see DESIGN.md).
func (s *IncidentService) Update(ctx context.Context, incident entity.Incident) error {
	if incident.ID == nil {
		return ErrMissingID
	}

	if err := s.repo.Update(ctx, &incident); err != nil {
		slog.Warn("updating working set despite storage failure", slog.Int64("id", *incident.ID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.incidents {
		if s.incidents[i].ID != nil && *s.incidents[i].ID == *incident.ID {
			s.incidents[i] = incident
			break
		}
	}
	return nil
}

// Delete removes the record from storage and at most one matching entry from
// the working set.
func (s *IncidentService) Delete(ctx context.Context, id int64) {
	if err := s.repo.Delete(ctx, id); err != nil {
		slog.Warn("removing cached incident despite storage failure", slog.Int64("id", id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.incidents {
		if s.incidents[i].ID != nil && *s.incidents[i].ID == id {
			s.incidents = append(s.incidents[:i], s.incidents[i+1:]...)
			break
		}
	}
}

// GetByID always reads through to storage, bypassing the working set.
func (s *IncidentService) GetByID(ctx context.Context, id int64) *entity.Incident {
	incident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return incident
}

// Search returns working-set entries whose id (rendered as text), title,
// description, or assignee contains the keyword, case-insensitively for the
// text fields. An empty keyword behaves as GetAll.
func (s *IncidentService) Search(ctx context.Context, keyword string) []entity.Incident {
	if keyword == "" {
		return s.GetAll(ctx)
	}
	lowered := strings.ToLower(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()
	var results []entity.Incident
	for _, incident := range s.incidents {
		if matchesKeyword(&incident, keyword, lowered) {
			results = append(results, incident)
		}
	}
	return results
}

func matchesKeyword(incident *entity.Incident, keyword, lowered string) bool {
	if incident.ID != nil && strings.Contains(strconv.FormatInt(*incident.ID, 10), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(incident.Title), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(incident.Description), lowered) {
		return true
	}
	return incident.AssignedTo != "" && strings.Contains(strings.ToLower(incident.AssignedTo), lowered)
}

// Filter returns working-set entries matching every supplied criterion by
// exact equality. A nil criterion is a wildcard, so all-nil returns the whole
// working set without touching storage.
func (s *IncidentService) Filter(_ context.Context, status *entity.Status, risk *entity.Risk, incidentType *entity.IncidentType) []entity.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	var results []entity.Incident
	for _, incident := range s.incidents {
		if status != nil && incident.Status != *status {
			continue
		}
		if risk != nil && incident.Risk != *risk {
			continue
		}
		if incidentType != nil && incident.Type != *incidentType {
			continue
		}
		results = append(results, incident)
	}
	return results
}

func snapshot(incidents []entity.Incident) []entity.Incident {
	return append([]entity.Incident(nil), incidents...)
}
