package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required,min=2"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	DoctorName  string `json:"doctor_name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TimeSlot    string `json:"time_slot" validate:"required"`
	Reason      string `json:"reason" validate:"omitempty"`
	ServiceType string `json:"service_type" validate:"omitempty"`
	Source      string `json:"source" validate:"omitempty,oneof=web phone whatsapp callcenter"`
}

// UpdateAppointmentRequest carries a partial update; nil fields are left
// untouched. Status only needs enum membership, there is no transition
// guard on appointments.
type UpdateAppointmentRequest struct {
	PatientName *string `json:"patient_name"`
	DoctorID    *string `json:"doctor_id"`
	DoctorName  *string `json:"doctor_name"`
	Date        *string `json:"date"`
	TimeSlot    *string `json:"time_slot"`
	Reason      *string `json:"reason"`
	ServiceType *string `json:"service_type"`
	Status      *string `json:"status" validate:"omitempty,oneof=scheduled confirmed arrived in_progress completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id,omitempty"`
	PatientName string `json:"patient_name"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Reason      string `json:"reason,omitempty"`
	Status      string `json:"status"`
	ServiceType string `json:"service_type,omitempty"`
	Source      string `json:"source,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
