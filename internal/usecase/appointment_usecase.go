package usecase

import (
	"context"
	"errors"
	"strings"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
)

// AppointmentUsecase manages the booking book shown at reception. It is
// independent of the visit workflow; bookings have no transition guard.
type AppointmentUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	ListByDoctor(ctx context.Context, doctorID string) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, actorID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, actorID string, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, actorID string, id string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll()
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) ListByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDate(date)
	if err != nil {
		u.log.Warnf("Failed to list appointments by date %s: %+v", date, err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctor(doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment books a new slot in the scheduled state
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actorID string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	source := entity.AppointmentSource(req.Source)
	if req.Source == "" {
		source = entity.SourceWeb
	}

	appointment := &entity.Appointment{
		ID:          generateAppointmentID(),
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Reason:      req.Reason,
		Status:      entity.AppointmentScheduled,
		ServiceType: req.ServiceType,
		Source:      source,
	}

	if err := u.appointmentRepo.Create(appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionAppointmentCreate, map[string]interface{}{
		"appointment_id": appointment.ID,
		"doctor_id":      appointment.DoctorID,
		"date":           appointment.Date,
	})
	u.log.Infof("Appointment created: id=%s, doctor=%s, slot=%s %s",
		appointment.ID, appointment.DoctorID, appointment.Date, appointment.TimeSlot)

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment applies a partial update. Status changes only check
// enum membership.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, actorID string, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(id)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.TimeSlot != nil {
		appointment.TimeSlot = *req.TimeSlot
	}
	if req.Reason != nil {
		appointment.Reason = *req.Reason
	}
	if req.ServiceType != nil {
		appointment.ServiceType = *req.ServiceType
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}

	if err := u.appointmentRepo.Update(appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionAppointmentUpdate, map[string]interface{}{
		"appointment_id": appointment.ID,
		"status":         string(appointment.Status),
	})
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment marks the booking cancelled. Cancelling twice is
// rejected.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, actorID string, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(id)
	if err != nil {
		return nil, err
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionAppointmentCancel, map[string]interface{}{
		"appointment_id": appointment.ID,
	})
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) findAppointment(id string) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// generateAppointmentID keeps the short apt- prefix used by the seeded
// bookings
func generateAppointmentID() string {
	return "apt-" + strings.Split(uuid.NewString(), "-")[0]
}

func appointmentList(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
