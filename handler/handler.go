package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/slack-go/slack"

	"github.com/secwatch/sirt/domain/entity"
	"github.com/secwatch/sirt/domain/repository"
	"github.com/secwatch/sirt/domain/service"
	"github.com/secwatch/sirt/presentation/blocks"
)

// ValidationError reports input rejected at the boundary, before the incident
// core is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type IncidentHandler struct {
	service       *service.IncidentService
	announcements repository.AnnouncementRepository
	slackRepo     repository.SlackRepositoryer
	validate      *validator.Validate
}

// NewIncidentHandler wires the incident core to its edges. slackRepo may be
// nil, in which case announcements are skipped.
func NewIncidentHandler(svc *service.IncidentService, announcements repository.AnnouncementRepository, slackRepo repository.SlackRepositoryer) *IncidentHandler {
	return &IncidentHandler{
		service:       svc,
		announcements: announcements,
		slackRepo:     slackRepo,
		validate:      validator.New(),
	}
}

func (h *IncidentHandler) CreateIncident(ctx context.Context, input *IncidentInput) (*entity.Incident, error) {
	incident, err := h.toEntity(input)
	if err != nil {
		return nil, err
	}

	created := h.service.Add(ctx, *incident)
	h.announce(ctx, blocks.IncidentCreated(created))
	return created, nil
}

func (h *IncidentHandler) UpdateIncident(ctx context.Context, id int64, input *IncidentInput) (*entity.Incident, error) {
	incident, err := h.toEntity(input)
	if err != nil {
		return nil, err
	}
	incident.ID = &id

	previous := h.service.GetByID(ctx, id)
	if err := h.service.Update(ctx, *incident); err != nil {
		return nil, err
	}
	if previous != nil && previous.Status != entity.StatusResolved && incident.Status == entity.StatusResolved {
		h.announce(ctx, blocks.IncidentResolved(incident))
	}
	return incident, nil
}

func (h *IncidentHandler) DeleteIncident(ctx context.Context, id int64) {
	h.service.Delete(ctx, id)
}

func (h *IncidentHandler) GetIncident(ctx context.Context, id int64) *entity.Incident {
	return h.service.GetByID(ctx, id)
}

func (h *IncidentHandler) ListIncidents(ctx context.Context) []entity.Incident {
	return h.service.GetAll(ctx)
}

func (h *IncidentHandler) SearchIncidents(ctx context.Context, keyword string) []entity.Incident {
	return h.service.Search(ctx, keyword)
}

// FilterIncidents takes raw enumeration tags; an empty tag is a wildcard.
func (h *IncidentHandler) FilterIncidents(ctx context.Context, statusTag, riskTag, typeTag string) ([]entity.Incident, error) {
	var (
		status       *entity.Status
		risk         *entity.Risk
		incidentType *entity.IncidentType
	)
	if statusTag != "" {
		s, err := entity.ParseStatus(statusTag)
		if err != nil {
			return nil, &ValidationError{Field: "status", Reason: err.Error()}
		}
		status = &s
	}
	if riskTag != "" {
		r, err := entity.ParseRisk(riskTag)
		if err != nil {
			return nil, &ValidationError{Field: "risk", Reason: err.Error()}
		}
		risk = &r
	}
	if typeTag != "" {
		t, err := entity.ParseIncidentType(typeTag)
		if err != nil {
			return nil, &ValidationError{Field: "type", Reason: err.Error()}
		}
		incidentType = &t
	}
	return h.service.Filter(ctx, status, risk, incidentType), nil
}

func (h *IncidentHandler) toEntity(input *IncidentInput) (*entity.Incident, error) {
	if err := h.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return nil, &ValidationError{
				Field:  strings.ToLower(f.Field()),
				Reason: fmt.Sprintf("failed %q constraint", f.Tag()),
			}
		}
		return nil, err
	}

	incidentType, err := entity.ParseIncidentType(input.Type)
	if err != nil {
		return nil, &ValidationError{Field: "type", Reason: err.Error()}
	}
	risk, err := entity.ParseRisk(input.Risk)
	if err != nil {
		return nil, &ValidationError{Field: "risk", Reason: err.Error()}
	}
	status, err := entity.ParseStatus(input.Status)
	if err != nil {
		return nil, &ValidationError{Field: "status", Reason: err.Error()}
	}

	return &entity.Incident{
		Title:           input.Title,
		Description:     input.Description,
		Type:            incidentType,
		Risk:            risk,
		Status:          status,
		ReportedDate:    input.ReportedDate,
		AssignedTo:      input.AssignedTo,
		ResolutionNotes: input.ResolutionNotes,
	}, nil
}

func (h *IncidentHandler) announce(ctx context.Context, messageBlocks []slack.Block) {
	if h.slackRepo == nil || h.announcements == nil {
		return
	}
	for _, name := range h.announcements.AnnouncementChannels(ctx) {
		channel, err := h.slackRepo.GetChannelByName(name)
		if err != nil || channel == nil {
			slog.Warn("announcement channel not found", slog.String("channel", name), slog.Any("error", err))
			continue
		}
		h.slackRepo.PostMessage(channel.ID, slack.MsgOptionBlocks(messageBlocks...))
	}
}
