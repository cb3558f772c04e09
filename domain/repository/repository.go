package repository

import (
	"context"

	"github.com/secwatch/sirt/domain/entity"
)

// IncidentRepository is the durable record store. Implementations absorb
// storage failures: they log, return the zero result, and keep the error
// retrievable rather than crashing the caller.
type IncidentRepository interface {
	FindAll(context.Context) ([]entity.Incident, error)
	FindByID(context.Context, int64) (*entity.Incident, error)
	Add(context.Context, *entity.Incident) (int64, error)
	Update(context.Context, *entity.Incident) error
	Delete(context.Context, int64) error
}

type AnnouncementRepository interface {
	AnnouncementChannels(context.Context) []string
}

type Repository interface {
	IncidentRepository
	AnnouncementRepository
}

type RepositoryFacade struct {
	IncidentRepository
	AnnouncementRepository
}

func NewRepository(incidentRepository IncidentRepository, announcementRepository AnnouncementRepository) Repository {
	return RepositoryFacade{
		IncidentRepository:     incidentRepository,
		AnnouncementRepository: announcementRepository,
	}
}
