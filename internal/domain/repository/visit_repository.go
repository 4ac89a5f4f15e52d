package repository

import (
	"medcore-clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository owns the session-scoped visit collection. Insertion
// order is preserved; FindByID returns (nil, nil) when no visit matches.
type VisitRepository interface {
	Create(visit *entity.PatientVisit) error
	FindByID(id uuid.UUID) (*entity.PatientVisit, error)
	FindAll() ([]entity.PatientVisit, error)
	FindByStatus(statuses ...entity.VisitStatus) ([]entity.PatientVisit, error)
	// Update replaces the stored visit and bumps its version. The stored
	// version must match the caller's copy or ErrVersionConflict is returned.
	Update(visit *entity.PatientVisit) error
}
