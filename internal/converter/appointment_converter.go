package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PatientName: appointment.PatientName,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date,
		TimeSlot:    appointment.TimeSlot,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
		ServiceType: appointment.ServiceType,
		Source:      string(appointment.Source),
	}
}

// AppointmentsToResponses converts a slice of appointments
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
