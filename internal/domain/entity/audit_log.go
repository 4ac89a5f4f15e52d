package entity

import (
	"time"
)

// AuditLog is one entry of the in-memory workflow audit trail
type AuditLog struct {
	ID        int64                  `json:"id"`
	UserID    string                 `json:"user_id,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Common audit actions
const (
	AuditActionUserLogin         = "user.login"
	AuditActionVisitRegister     = "visit.register"
	AuditActionTriageStart       = "triage.start"
	AuditActionTriageComplete    = "triage.complete"
	AuditActionConsultationStart = "consultation.start"
	AuditActionConsultationSign  = "consultation.sign"
	AuditActionPharmacyDispatch  = "pharmacy.dispatch"
	AuditActionVisitDischarge    = "visit.discharge"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentCancel = "appointment.cancel"
)
