package repository

import (
	"sync"

	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"

	"github.com/google/uuid"
)

// visitRepository is the in-memory visit store. Visits live for the
// process session only; there is no deletion path. A slice keeps
// insertion order for the queue views, the map indexes by id.
type visitRepository struct {
	mu     sync.RWMutex
	visits []*entity.PatientVisit
	byID   map[uuid.UUID]*entity.PatientVisit
}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{
		byID: make(map[uuid.UUID]*entity.PatientVisit),
	}
}

func (r *visitRepository) Create(visit *entity.PatientVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneVisit(visit)
	stored.Version = 1
	r.visits = append(r.visits, stored)
	r.byID[stored.ID] = stored
	visit.Version = stored.Version
	return nil
}

func (r *visitRepository) FindByID(id uuid.UUID) (*entity.PatientVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneVisit(stored), nil
}

func (r *visitRepository) FindAll() ([]entity.PatientVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.PatientVisit, 0, len(r.visits))
	for _, v := range r.visits {
		out = append(out, *cloneVisit(v))
	}
	return out, nil
}

func (r *visitRepository) FindByStatus(statuses ...entity.VisitStatus) ([]entity.PatientVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.PatientVisit{}
	for _, v := range r.visits {
		for _, s := range statuses {
			if v.Status == s {
				out = append(out, *cloneVisit(v))
				break
			}
		}
	}
	return out, nil
}

// Update commits the caller's copy, guarding against concurrent writers
// with an optimistic version check.
func (r *visitRepository) Update(visit *entity.PatientVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[visit.ID]
	if !ok {
		return nil
	}
	if stored.Version != visit.Version {
		return domainRepo.ErrVersionConflict
	}

	replacement := cloneVisit(visit)
	replacement.Version = stored.Version + 1
	*stored = *replacement
	visit.Version = stored.Version
	return nil
}

// cloneVisit deep-copies the aggregate so callers never alias stored
// diagnosis slices.
func cloneVisit(v *entity.PatientVisit) *entity.PatientVisit {
	c := *v

	if v.Vitals != nil {
		vitals := *v.Vitals
		c.Vitals = &vitals
	}
	if v.IllnessDuration != nil {
		dur := *v.IllnessDuration
		c.IllnessDuration = &dur
	}
	if v.RestCertificate != nil {
		cert := *v.RestCertificate
		c.RestCertificate = &cert
	}
	if v.ConsultationSignedAt != nil {
		ts := *v.ConsultationSignedAt
		c.ConsultationSignedAt = &ts
	}

	c.MedicalHistory = append([]entity.HistoryItem(nil), v.MedicalHistory...)
	c.SurgicalHistory = append([]entity.HistoryItem(nil), v.SurgicalHistory...)

	if v.Diagnoses != nil {
		c.Diagnoses = make([]entity.Diagnosis, len(v.Diagnoses))
		for i, d := range v.Diagnoses {
			cd := d
			cd.LabExams = append([]entity.ExamOrder(nil), d.LabExams...)
			cd.ImagingExams = append([]entity.ExamOrder(nil), d.ImagingExams...)
			cd.Medications = append([]entity.MedicationOrder(nil), d.Medications...)
			c.Diagnoses[i] = cd
		}
	}

	return &c
}
