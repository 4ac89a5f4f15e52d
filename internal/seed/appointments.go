package seed

import (
	"time"

	"medcore-clinic/internal/domain/entity"
)

// Appointments returns the demo booking book for today
func Appointments() []entity.Appointment {
	today := time.Now().Format("2006-01-02")
	return []entity.Appointment{
		{
			ID: "apt-001", PatientID: "p1", PatientName: "Ana Martinez",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "08:30", Reason: "Control de diabetes",
			Status: entity.AppointmentArrived, ServiceType: "Medicina General", Source: entity.SourceWeb,
		},
		{
			ID: "apt-002", PatientID: "p2", PatientName: "Jorge Ramirez",
			DoctorID: "doc-02", DoctorName: "Dra. Maria Lopez",
			Date: today, TimeSlot: "09:00", Reason: "Evaluacion cardiologica",
			Status: entity.AppointmentArrived, ServiceType: "Cardiologia", Source: entity.SourcePhone,
		},
		{
			ID: "apt-003", PatientName: "Patricia Lopez",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "09:30", Reason: "Dolor de garganta persistente",
			Status: entity.AppointmentScheduled, ServiceType: "Medicina General", Source: entity.SourceWhatsapp,
		},
		{
			ID: "apt-004", PatientName: "Fernando Ruiz",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "10:00", Reason: "Chequeo general anual",
			Status: entity.AppointmentConfirmed, ServiceType: "Medicina General", Source: entity.SourceWeb,
		},
		{
			ID: "apt-005", PatientName: "Isabella Torres",
			DoctorID: "doc-02", DoctorName: "Dra. Maria Lopez",
			Date: today, TimeSlot: "10:00", Reason: "Dolor de cabeza recurrente",
			Status: entity.AppointmentScheduled, ServiceType: "Medicina Interna", Source: entity.SourceCallcenter,
		},
		{
			ID: "apt-006", PatientName: "Mateo Herrera",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "10:30", Reason: "Dolor lumbar cronico",
			Status: entity.AppointmentScheduled, ServiceType: "Medicina General", Source: entity.SourcePhone,
		},
		{
			ID: "apt-007", PatientName: "Valentina Cruz",
			DoctorID: "doc-02", DoctorName: "Dra. Maria Lopez",
			Date: today, TimeSlot: "11:00", Reason: "Infeccion urinaria",
			Status: entity.AppointmentConfirmed, ServiceType: "Medicina Interna", Source: entity.SourceWeb,
		},
		{
			ID: "apt-008", PatientName: "Ricardo Gutierrez",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "11:30", Reason: "Gastritis",
			Status: entity.AppointmentScheduled, ServiceType: "Medicina General", Source: entity.SourceWhatsapp,
		},
		{
			ID: "apt-009", PatientName: "Sofia Navarro",
			DoctorID: "doc-02", DoctorName: "Dra. Maria Lopez",
			Date: today, TimeSlot: "11:30", Reason: "Control de hipertension",
			Status: entity.AppointmentCancelled, ServiceType: "Medicina Interna", Source: entity.SourcePhone,
		},
		{
			ID: "apt-010", PatientName: "Luis Paredes",
			DoctorID: "doc-01", DoctorName: "Dr. Carlos Mendoza",
			Date: today, TimeSlot: "14:00", Reason: "Tos persistente",
			Status: entity.AppointmentScheduled, ServiceType: "Medicina General", Source: entity.SourceCallcenter,
		},
	}
}
