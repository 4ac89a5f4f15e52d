package repository

import (
	"medcore-clinic/internal/domain/entity"
)

// AppointmentRepository owns the booking collection
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	FindByID(id string) (*entity.Appointment, error)
	FindAll() ([]entity.Appointment, error)
	FindByDate(date string) ([]entity.Appointment, error)
	FindByDoctor(doctorID string) ([]entity.Appointment, error)
	Update(appointment *entity.Appointment) error
}
