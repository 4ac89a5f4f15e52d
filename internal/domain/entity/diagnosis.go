package entity

import (
	"github.com/google/uuid"
)

// DiagnosisType qualifies how firm a CIE-10 finding is
type DiagnosisType string

const (
	DiagnosisDefinitivo DiagnosisType = "definitivo"
	DiagnosisPresuntivo DiagnosisType = "presuntivo"
	DiagnosisRepetitivo DiagnosisType = "repetitivo"
)

// MedicationRoute is the administration route of a prescribed medication
type MedicationRoute string

const (
	RouteOral       MedicationRoute = "oral"
	RouteIV         MedicationRoute = "IV"
	RouteIM         MedicationRoute = "IM"
	RouteTopical    MedicationRoute = "topical"
	RouteSublingual MedicationRoute = "sublingual"
	RouteInhalation MedicationRoute = "inhalation"
)

// ExamOrder is a single lab or imaging exam attached to a diagnosis
type ExamOrder struct {
	ID           uuid.UUID `json:"id"`
	ExamID       string    `json:"exam_id"`
	ExamName     string    `json:"exam_name"`
	CategoryName string    `json:"category_name"`
}

// MedicationOrder is a single prescription line attached to a diagnosis
type MedicationOrder struct {
	ID             uuid.UUID       `json:"id"`
	MedicationName string          `json:"medication_name"`
	Quantity       int             `json:"quantity"`
	Days           int             `json:"days"`
	Route          MedicationRoute `json:"route"`
	Indication     string          `json:"indication,omitempty"`
}

// Diagnosis is a CIE-10 coded finding owned by exactly one visit. Its
// exam and medication sub-orders live and die with it.
type Diagnosis struct {
	ID           uuid.UUID         `json:"id"`
	CIE10Code    string            `json:"cie10_code"`
	CIE10Label   string            `json:"cie10_label"`
	Type         DiagnosisType     `json:"type"`
	LabExams     []ExamOrder       `json:"lab_exams"`
	ImagingExams []ExamOrder       `json:"imaging_exams"`
	Medications  []MedicationOrder `json:"medications"`
}

// toggleExam removes the order carrying examID when present, otherwise
// appends a new one. Toggling twice restores the original list.
func toggleExam(orders []ExamOrder, examID, examName, categoryName string) []ExamOrder {
	for i := range orders {
		if orders[i].ExamID == examID {
			return append(orders[:i], orders[i+1:]...)
		}
	}
	return append(orders, ExamOrder{
		ID:           uuid.New(),
		ExamID:       examID,
		ExamName:     examName,
		CategoryName: categoryName,
	})
}

// ToggleLabExam flips the presence of a lab exam on the diagnosis
func (d *Diagnosis) ToggleLabExam(examID, examName, categoryName string) {
	d.LabExams = toggleExam(d.LabExams, examID, examName, categoryName)
}

// ToggleImagingExam flips the presence of an imaging exam on the diagnosis
func (d *Diagnosis) ToggleImagingExam(examID, examName, categoryName string) {
	d.ImagingExams = toggleExam(d.ImagingExams, examID, examName, categoryName)
}

// AddMedication appends a prescription line in insertion order
func (d *Diagnosis) AddMedication(m MedicationOrder) {
	d.Medications = append(d.Medications, m)
}

// RemoveMedication drops a prescription line by id. Returns false if no
// line matched.
func (d *Diagnosis) RemoveMedication(id uuid.UUID) bool {
	for i := range d.Medications {
		if d.Medications[i].ID == id {
			d.Medications = append(d.Medications[:i], d.Medications[i+1:]...)
			return true
		}
	}
	return false
}

// ValidDiagnosisType checks enum membership for the diagnosis type
func ValidDiagnosisType(t DiagnosisType) bool {
	switch t {
	case DiagnosisDefinitivo, DiagnosisPresuntivo, DiagnosisRepetitivo:
		return true
	}
	return false
}

// ValidMedicationRoute checks enum membership for the medication route
func ValidMedicationRoute(r MedicationRoute) bool {
	switch r {
	case RouteOral, RouteIV, RouteIM, RouteTopical, RouteSublingual, RouteInhalation:
		return true
	}
	return false
}
