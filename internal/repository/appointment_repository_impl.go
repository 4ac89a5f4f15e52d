package repository

import (
	"sync"

	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"
)

// appointmentRepository is the in-memory booking store, insertion ordered
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []*entity.Appointment
	byID         map[string]*entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{
		byID: make(map[string]*entity.Appointment),
	}
}

func (r *appointmentRepository) Create(appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *appointment
	r.appointments = append(r.appointments, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *appointmentRepository) FindByID(id string) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	a := *stored
	return &a, nil
}

func (r *appointmentRepository) FindAll() ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (r *appointmentRepository) FindByDate(date string) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Appointment{}
	for _, a := range r.appointments {
		if a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *appointmentRepository) FindByDoctor(doctorID string) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Appointment{}
	for _, a := range r.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *appointmentRepository) Update(appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[appointment.ID]
	if !ok {
		return nil
	}
	*stored = *appointment
	return nil
}
