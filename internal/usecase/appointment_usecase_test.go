package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	repoImpl "medcore-clinic/internal/repository"
	"medcore-clinic/internal/seed"
	"medcore-clinic/internal/service"

	"github.com/sirupsen/logrus"
)

func newAppointmentEnv(t *testing.T, seeded bool) (AppointmentUsecase, repository.AppointmentRepository) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	appointmentRepo := repoImpl.NewAppointmentRepository()
	if seeded {
		appointments := seed.Appointments()
		for i := range appointments {
			if err := appointmentRepo.Create(&appointments[i]); err != nil {
				t.Fatalf("seed appointment: %v", err)
			}
		}
	}

	audit := service.NewAuditService(log, repoImpl.NewAuditLogRepository())
	return NewAppointmentUsecase(log, appointmentRepo, audit), appointmentRepo
}

func TestCreateAppointmentDefaults(t *testing.T) {
	usecase, _ := newAppointmentEnv(t, false)

	appointment, err := usecase.CreateAppointment(context.Background(), "user-recepcion", &dto.CreateAppointmentRequest{
		PatientName: "Rosa Aguilar",
		DoctorID:    "doc-01",
		DoctorName:  "Dr. Ricardo Mora",
		Date:        "2024-06-10",
		TimeSlot:    "09:30",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	if !strings.HasPrefix(appointment.ID, "apt-") {
		t.Errorf("id = %s, want apt- prefix", appointment.ID)
	}
	if appointment.Status != string(entity.AppointmentScheduled) {
		t.Errorf("status = %s, want scheduled", appointment.Status)
	}
	if appointment.Source != string(entity.SourceWeb) {
		t.Errorf("source = %s, want web default", appointment.Source)
	}
}

func TestUpdateAppointmentPartial(t *testing.T) {
	usecase, _ := newAppointmentEnv(t, true)

	status := string(entity.AppointmentConfirmed)
	updated, err := usecase.UpdateAppointment(context.Background(), "user-recepcion", "apt-001", &dto.UpdateAppointmentRequest{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}
	if updated.Status != status {
		t.Errorf("status = %s, want %s", updated.Status, status)
	}

	// untouched fields survive partial update
	original := seed.Appointments()[0]
	if updated.PatientName != original.PatientName {
		t.Errorf("patient name changed: %s", updated.PatientName)
	}
}

func TestCancelAppointmentTwice(t *testing.T) {
	usecase, _ := newAppointmentEnv(t, true)
	ctx := context.Background()

	cancelled, err := usecase.CancelAppointment(ctx, "user-recepcion", "apt-002")
	if err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if cancelled.Status != string(entity.AppointmentCancelled) {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}

	if _, err := usecase.CancelAppointment(ctx, "user-recepcion", "apt-002"); !errors.Is(err, ErrAppointmentCancelled) {
		t.Errorf("expected ErrAppointmentCancelled, got %v", err)
	}
	if _, err := usecase.CancelAppointment(ctx, "user-recepcion", "apt-999"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestListAppointmentsByDoctor(t *testing.T) {
	usecase, _ := newAppointmentEnv(t, true)

	all, err := usecase.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if all.Total != len(seed.Appointments()) {
		t.Fatalf("expected %d appointments, got %d", len(seed.Appointments()), all.Total)
	}

	doctorID := seed.Appointments()[0].DoctorID
	mine, err := usecase.ListByDoctor(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("ListByDoctor: %v", err)
	}
	if mine.Total == 0 {
		t.Fatal("expected at least one appointment for the seeded doctor")
	}
	for _, a := range mine.Appointments {
		if a.DoctorID != doctorID {
			t.Errorf("appointment %s has doctor %s", a.ID, a.DoctorID)
		}
	}
}
