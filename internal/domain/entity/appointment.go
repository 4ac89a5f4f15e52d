package entity

// AppointmentStatus is the booking status enum. Unlike the visit workflow
// there is no transition table: any status may be set to any other, only
// enum membership is checked.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentArrived    AppointmentStatus = "arrived"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
)

// AppointmentSource records how the booking entered the system
type AppointmentSource string

const (
	SourceWeb        AppointmentSource = "web"
	SourcePhone      AppointmentSource = "phone"
	SourceWhatsapp   AppointmentSource = "whatsapp"
	SourceCallcenter AppointmentSource = "callcenter"
)

// Appointment is a booking made before a visit exists. It is independent
// of the PatientVisit aggregate; admission may reference it when the
// patient arrives.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"`
	DoctorID    string            `json:"doctor_id"`
	DoctorName  string            `json:"doctor_name"`
	Date        string            `json:"date"`
	TimeSlot    string            `json:"time_slot"`
	Reason      string            `json:"reason,omitempty"`
	Status      AppointmentStatus `json:"status"`
	ServiceType string            `json:"service_type,omitempty"`
	Source      AppointmentSource `json:"source,omitempty"`
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}

// Cancel sets the appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentCancelled
}

// ValidAppointmentStatus checks enum membership for the booking status
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentArrived,
		AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
