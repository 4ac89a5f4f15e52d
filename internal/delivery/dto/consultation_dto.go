package dto

// Request DTOs

// UpdateClinicalDataRequest carries a partial update; nil fields are
// left untouched on the visit.
type UpdateClinicalDataRequest struct {
	Anamnesis             *string                 `json:"anamnesis"`
	WorkPlan              *string                 `json:"work_plan"`
	ClinicalExam          *string                 `json:"clinical_exam"`
	MainSymptom           *string                 `json:"main_symptom"`
	IllnessDuration       *IllnessDurationRequest `json:"illness_duration"`
	PatientTypeEstab      *string                 `json:"patient_type_establishment" validate:"omitempty,oneof=N C R"`
	PatientTypeService    *string                 `json:"patient_type_service" validate:"omitempty,oneof=N C R"`
	TreatmentObservations *string                 `json:"treatment_observations"`
	NextControlDate       *string                 `json:"next_control_date"`
	MedicalNotes          *string                 `json:"medical_notes"`
	RestCertificate       *RestCertificateRequest `json:"rest_certificate"`
}

type IllnessDurationRequest struct {
	Value int    `json:"value" validate:"required,gt=0"`
	Unit  string `json:"unit" validate:"required,oneof=minutes hours days weeks"`
}

type RestCertificateRequest struct {
	Days      int    `json:"days" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	Reason    string `json:"reason" validate:"omitempty"`
}

type AddDiagnosisRequest struct {
	CIE10Code string `json:"cie10_code" validate:"required"`
	Type      string `json:"type" validate:"omitempty,oneof=definitivo presuntivo repetitivo"`
}

type SetDiagnosisTypeRequest struct {
	Type string `json:"type" validate:"required,oneof=definitivo presuntivo repetitivo"`
}

type ToggleExamRequest struct {
	ExamID string `json:"exam_id" validate:"required"`
}

type AddMedicationRequest struct {
	MedicationID string `json:"medication_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Days         int    `json:"days" validate:"required,gt=0"`
	Route        string `json:"route" validate:"omitempty,oneof=oral IV IM topical sublingual inhalation"`
	Indication   string `json:"indication" validate:"omitempty"`
}

// Response DTOs

type OrderExamResponse struct {
	ExamName     string `json:"exam_name"`
	CategoryName string `json:"category_name"`
}

type OrderMedicationResponse struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Days       int    `json:"days"`
	Route      string `json:"route"`
	Indication string `json:"indication"`
}

type LabOrderResponse struct {
	DiagnosisCode  string              `json:"diagnosis_code"`
	DiagnosisLabel string              `json:"diagnosis_label"`
	Exams          []OrderExamResponse `json:"exams"`
}

type ImagingOrderResponse struct {
	DiagnosisCode  string              `json:"diagnosis_code"`
	DiagnosisLabel string              `json:"diagnosis_label"`
	Exams          []OrderExamResponse `json:"exams"`
}

type PharmacyOrderResponse struct {
	DiagnosisCode  string                    `json:"diagnosis_code"`
	DiagnosisLabel string                    `json:"diagnosis_label"`
	Medications    []OrderMedicationResponse `json:"medications"`
}

type OrderSetResponse struct {
	LabOrders      []LabOrderResponse      `json:"lab_orders"`
	ImagingOrders  []ImagingOrderResponse  `json:"imaging_orders"`
	PharmacyOrders []PharmacyOrderResponse `json:"pharmacy_orders"`
}

type SignConsultationResponse struct {
	Visit     VisitResponse    `json:"visit"`
	Orders    OrderSetResponse `json:"orders"`
	Signature string           `json:"signature_id"`
	SignedAt  string           `json:"signed_at"`
}
