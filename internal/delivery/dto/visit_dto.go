package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterVisitRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Age           int    `json:"age" validate:"required,gt=0,lte=130"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female"`
	Phone         string `json:"phone" validate:"omitempty"`
	ServiceType   string `json:"service_type" validate:"omitempty"`
	AppointmentID string `json:"appointment_id" validate:"omitempty"`
}

// Response DTOs

type VitalsResponse struct {
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	Temperature   string `json:"temperature"`
	BloodPressure string `json:"blood_pressure"`
}

type IllnessDurationResponse struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type RestCertificateResponse struct {
	Days      int    `json:"days"`
	StartDate string `json:"start_date"`
	Reason    string `json:"reason"`
}

type HistoryItemResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type ExamOrderResponse struct {
	ID           uuid.UUID `json:"id"`
	ExamID       string    `json:"exam_id"`
	ExamName     string    `json:"exam_name"`
	CategoryName string    `json:"category_name"`
}

type MedicationOrderResponse struct {
	ID             uuid.UUID `json:"id"`
	MedicationName string    `json:"medication_name"`
	Quantity       int       `json:"quantity"`
	Days           int       `json:"days"`
	Route          string    `json:"route"`
	Indication     string    `json:"indication,omitempty"`
}

type DiagnosisResponse struct {
	ID           uuid.UUID                 `json:"id"`
	CIE10Code    string                    `json:"cie10_code"`
	CIE10Label   string                    `json:"cie10_label"`
	Type         string                    `json:"type"`
	LabExams     []ExamOrderResponse       `json:"lab_exams"`
	ImagingExams []ExamOrderResponse       `json:"imaging_exams"`
	Medications  []MedicationOrderResponse `json:"medications"`
}

type VisitResponse struct {
	ID                    uuid.UUID                `json:"id"`
	PatientID             string                   `json:"patient_id"`
	Name                  string                   `json:"name"`
	Initials              string                   `json:"initials"`
	Age                   int                      `json:"age"`
	Gender                string                   `json:"gender"`
	Phone                 string                   `json:"phone,omitempty"`
	Status                string                   `json:"status"`
	Priority              string                   `json:"priority"`
	RegisteredAt          time.Time                `json:"registered_at"`
	AppointmentID         string                   `json:"appointment_id,omitempty"`
	ServiceType           string                   `json:"service_type,omitempty"`
	ReceiptID             string                   `json:"receipt_id,omitempty"`
	AccountNumber         string                   `json:"account_number,omitempty"`
	Vitals                *VitalsResponse          `json:"vitals,omitempty"`
	TriageObservations    string                   `json:"triage_observations,omitempty"`
	Anamnesis             string                   `json:"anamnesis,omitempty"`
	WorkPlan              string                   `json:"work_plan,omitempty"`
	ClinicalExam          string                   `json:"clinical_exam,omitempty"`
	MainSymptom           string                   `json:"main_symptom,omitempty"`
	IllnessDuration       *IllnessDurationResponse `json:"illness_duration,omitempty"`
	PatientTypeEstab      string                   `json:"patient_type_establishment,omitempty"`
	PatientTypeService    string                   `json:"patient_type_service,omitempty"`
	Diagnoses             []DiagnosisResponse      `json:"diagnoses"`
	TreatmentObservations string                   `json:"treatment_observations,omitempty"`
	NextControlDate       string                   `json:"next_control_date,omitempty"`
	MedicalNotes          string                   `json:"medical_notes,omitempty"`
	RestCertificate       *RestCertificateResponse `json:"rest_certificate,omitempty"`
	ConsultationSignedAt  *time.Time               `json:"consultation_signed_at,omitempty"`
	SignatureID           string                   `json:"signature_id,omitempty"`
	NextStep              string                   `json:"next_step,omitempty"`
	Prescription          string                   `json:"prescription,omitempty"`
	MedicalHistory        []HistoryItemResponse    `json:"medical_history"`
	SurgicalHistory       []HistoryItemResponse    `json:"surgical_history"`
	Allergies             string                   `json:"allergies,omitempty"`
	Version               int64                    `json:"version"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
