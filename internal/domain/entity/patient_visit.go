package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VisitStatus represents the workflow stage of a patient visit
type VisitStatus string

const (
	VisitStatusRegistered       VisitStatus = "registered"
	VisitStatusInTriage         VisitStatus = "in_triage"
	VisitStatusTriaged          VisitStatus = "triaged"
	VisitStatusInConsultation   VisitStatus = "in_consultation"
	VisitStatusPostConsultation VisitStatus = "post_consultation"
	VisitStatusCompleted        VisitStatus = "completed"
)

// VisitPriority represents triage severity. Informational only, it does
// not gate workflow transitions.
type VisitPriority string

const (
	PriorityLow    VisitPriority = "low"
	PriorityMedium VisitPriority = "medium"
	PriorityHigh   VisitPriority = "high"
	PriorityUrgent VisitPriority = "urgent"
)

// NextStep is the post-consultation routing decision
type NextStep string

const (
	NextStepFarmacia    NextStep = "farmacia"
	NextStepLaboratorio NextStep = "laboratorio"
	NextStepSalida      NextStep = "salida"
)

// PatientType is the administrative classification used by the
// establishment and service fields
type PatientType string

const (
	PatientTypeNew       PatientType = "N"
	PatientTypeContinuer PatientType = "C"
	PatientTypeReentrant PatientType = "R"
)

// DurationUnit qualifies the illness duration value
type DurationUnit string

const (
	DurationMinutes DurationUnit = "minutes"
	DurationHours   DurationUnit = "hours"
	DurationDays    DurationUnit = "days"
	DurationWeeks   DurationUnit = "weeks"
)

// InvalidTransitionError is returned when a workflow transition outside
// the guarded table is attempted.
type InvalidTransitionError struct {
	From VisitStatus
	To   VisitStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid visit transition: %s -> %s", e.From, e.To)
}

// visitTransitions is the guarded transition table. All transitions are
// single-direction with no rollback path.
var visitTransitions = map[VisitStatus]VisitStatus{
	VisitStatusRegistered:       VisitStatusInTriage,
	VisitStatusInTriage:         VisitStatusTriaged,
	VisitStatusTriaged:          VisitStatusInConsultation,
	VisitStatusInConsultation:   VisitStatusPostConsultation,
	VisitStatusPostConsultation: VisitStatusCompleted,
}

// Vitals holds the structured measurements taken at triage
type Vitals struct {
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	Temperature   string `json:"temperature"`
	BloodPressure string `json:"blood_pressure"`
}

// IllnessDuration is how long the main symptom has been present
type IllnessDuration struct {
	Value int          `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// RestCertificate is the medical rest order issued at consultation
type RestCertificate struct {
	Days      int    `json:"days"`
	StartDate string `json:"start_date"`
	Reason    string `json:"reason"`
}

// HistoryItem is a labeled chip on the patient's medical or surgical history
type HistoryItem struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// PatientVisit is the aggregate for one clinic encounter, from admission
// through discharge. It owns its diagnoses; sub-orders are reachable only
// through them.
type PatientVisit struct {
	ID           uuid.UUID     `json:"id"`
	PatientID    string        `json:"patient_id"`
	Name         string        `json:"name"`
	Initials     string        `json:"initials"`
	Age          int           `json:"age"`
	Gender       string        `json:"gender"`
	Phone        string        `json:"phone,omitempty"`
	Status       VisitStatus   `json:"status"`
	Priority     VisitPriority `json:"priority"`
	RegisteredAt time.Time     `json:"registered_at"`

	// Admission
	AppointmentID string `json:"appointment_id,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`
	ReceiptID     string `json:"receipt_id,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	// Triage
	Vitals             *Vitals `json:"vitals,omitempty"`
	TriageObservations string  `json:"triage_observations,omitempty"`

	// Consultation
	Anamnesis             string           `json:"anamnesis,omitempty"`
	WorkPlan              string           `json:"work_plan,omitempty"`
	ClinicalExam          string           `json:"clinical_exam,omitempty"`
	MainSymptom           string           `json:"main_symptom,omitempty"`
	IllnessDuration       *IllnessDuration `json:"illness_duration,omitempty"`
	PatientTypeEstab      PatientType      `json:"patient_type_establishment,omitempty"`
	PatientTypeService    PatientType      `json:"patient_type_service,omitempty"`
	Diagnoses             []Diagnosis      `json:"diagnoses,omitempty"`
	TreatmentObservations string           `json:"treatment_observations,omitempty"`
	NextControlDate       string           `json:"next_control_date,omitempty"`
	MedicalNotes          string           `json:"medical_notes,omitempty"`
	RestCertificate       *RestCertificate `json:"rest_certificate,omitempty"`

	// Sign-off
	ConsultationSignedAt *time.Time `json:"consultation_signed_at,omitempty"`
	SignatureID          string     `json:"signature_id,omitempty"`
	NextStep             NextStep   `json:"next_step,omitempty"`
	Prescription         string     `json:"prescription,omitempty"`

	// Reference data shown on the patient banner
	MedicalHistory  []HistoryItem `json:"medical_history"`
	SurgicalHistory []HistoryItem `json:"surgical_history"`
	Allergies       string        `json:"allergies,omitempty"`

	// Version increases on every committed mutation. Callers holding a
	// stale copy can detect concurrent writes against it.
	Version int64 `json:"version"`
}

// CanTransitionTo reports whether moving to the target status is legal
// from the current one.
func (v *PatientVisit) CanTransitionTo(target VisitStatus) bool {
	next, ok := visitTransitions[v.Status]
	return ok && next == target
}

// TransitionTo advances the visit status, enforcing the guarded table.
func (v *PatientVisit) TransitionTo(target VisitStatus) error {
	if !v.CanTransitionTo(target) {
		return &InvalidTransitionError{From: v.Status, To: target}
	}
	v.Status = target
	return nil
}

// IsSigned reports whether the consultation has been signed. Once signed
// the diagnosis list is frozen.
func (v *PatientVisit) IsSigned() bool {
	return v.ConsultationSignedAt != nil
}

// IsCompleted checks if the visit reached its terminal state
func (v *PatientVisit) IsCompleted() bool {
	return v.Status == VisitStatusCompleted
}

// IsEditable reports whether consultation data may still be mutated
func (v *PatientVisit) IsEditable() bool {
	return !v.IsSigned() && v.Status == VisitStatusInConsultation
}

// FindDiagnosis returns a pointer into the visit's diagnosis list, or nil
func (v *PatientVisit) FindDiagnosis(id uuid.UUID) *Diagnosis {
	for i := range v.Diagnoses {
		if v.Diagnoses[i].ID == id {
			return &v.Diagnoses[i]
		}
	}
	return nil
}

// RemoveDiagnosis drops a diagnosis by id, preserving order of the rest.
// Returns false if no diagnosis matched.
func (v *PatientVisit) RemoveDiagnosis(id uuid.UUID) bool {
	for i := range v.Diagnoses {
		if v.Diagnoses[i].ID == id {
			v.Diagnoses = append(v.Diagnoses[:i], v.Diagnoses[i+1:]...)
			return true
		}
	}
	return false
}

// ValidVisitPriority checks enum membership for the priority field
func ValidVisitPriority(p VisitPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidPatientType checks enum membership for the N/C/R classification
func ValidPatientType(t PatientType) bool {
	switch t {
	case PatientTypeNew, PatientTypeContinuer, PatientTypeReentrant:
		return true
	}
	return false
}

// ValidDurationUnit checks enum membership for the illness duration unit
func ValidDurationUnit(u DurationUnit) bool {
	switch u {
	case DurationMinutes, DurationHours, DurationDays, DurationWeeks:
		return true
	}
	return false
}
