package service

import (
	"fmt"
	"strings"

	"medcore-clinic/internal/domain/entity"
)

// OrderExam is one exam line inside a dispatch order
type OrderExam struct {
	ExamName     string `json:"exam_name"`
	CategoryName string `json:"category_name"`
}

// OrderMedication is one prescription line inside a pharmacy order
type OrderMedication struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Days       int    `json:"days"`
	Route      string `json:"route"`
	Indication string `json:"indication"`
}

// LabOrder groups the lab exams of one diagnosis for dispatch
type LabOrder struct {
	DiagnosisCode  string      `json:"diagnosis_code"`
	DiagnosisLabel string      `json:"diagnosis_label"`
	Exams          []OrderExam `json:"exams"`
}

// ImagingOrder groups the imaging exams of one diagnosis for dispatch
type ImagingOrder struct {
	DiagnosisCode  string      `json:"diagnosis_code"`
	DiagnosisLabel string      `json:"diagnosis_label"`
	Exams          []OrderExam `json:"exams"`
}

// PharmacyOrder groups the medications of one diagnosis for dispatch
type PharmacyOrder struct {
	DiagnosisCode  string            `json:"diagnosis_code"`
	DiagnosisLabel string            `json:"diagnosis_label"`
	Medications    []OrderMedication `json:"medications"`
}

// OrderSet is the result of partitioning a visit's diagnoses into the
// three downstream dispatch channels
type OrderSet struct {
	LabOrders      []LabOrder      `json:"lab_orders"`
	ImagingOrders  []ImagingOrder  `json:"imaging_orders"`
	PharmacyOrders []PharmacyOrder `json:"pharmacy_orders"`
}

// GenerateOrders partitions the attached sub-orders of each diagnosis
// into per-diagnosis lab, imaging and pharmacy orders. Diagnoses are
// walked in stored order and exam/medication insertion order is kept.
// A diagnosis contributing nothing to a channel is omitted from it; no
// merging happens across diagnoses sharing a code. Pure: same input,
// same output, no side effects.
func GenerateOrders(diagnoses []entity.Diagnosis) OrderSet {
	set := OrderSet{
		LabOrders:      []LabOrder{},
		ImagingOrders:  []ImagingOrder{},
		PharmacyOrders: []PharmacyOrder{},
	}

	for _, d := range diagnoses {
		if len(d.LabExams) > 0 {
			order := LabOrder{DiagnosisCode: d.CIE10Code, DiagnosisLabel: d.CIE10Label}
			for _, e := range d.LabExams {
				order.Exams = append(order.Exams, OrderExam{ExamName: e.ExamName, CategoryName: e.CategoryName})
			}
			set.LabOrders = append(set.LabOrders, order)
		}
		if len(d.ImagingExams) > 0 {
			order := ImagingOrder{DiagnosisCode: d.CIE10Code, DiagnosisLabel: d.CIE10Label}
			for _, e := range d.ImagingExams {
				order.Exams = append(order.Exams, OrderExam{ExamName: e.ExamName, CategoryName: e.CategoryName})
			}
			set.ImagingOrders = append(set.ImagingOrders, order)
		}
		if len(d.Medications) > 0 {
			order := PharmacyOrder{DiagnosisCode: d.CIE10Code, DiagnosisLabel: d.CIE10Label}
			for _, m := range d.Medications {
				order.Medications = append(order.Medications, OrderMedication{
					Name:       m.MedicationName,
					Quantity:   m.Quantity,
					Days:       m.Days,
					Route:      string(m.Route),
					Indication: m.Indication,
				})
			}
			set.PharmacyOrders = append(set.PharmacyOrders, order)
		}
	}

	return set
}

// DeriveNextStep routes the visit after signing: pharmacy wins when any
// diagnosis prescribes a medication, then laboratory when any lab or
// imaging exam was ordered, otherwise direct discharge.
func DeriveNextStep(diagnoses []entity.Diagnosis) entity.NextStep {
	hasExams := false
	for _, d := range diagnoses {
		if len(d.Medications) > 0 {
			return entity.NextStepFarmacia
		}
		if len(d.LabExams) > 0 || len(d.ImagingExams) > 0 {
			hasExams = true
		}
	}
	if hasExams {
		return entity.NextStepLaboratorio
	}
	return entity.NextStepSalida
}

// BuildPrescription renders the medication summary stamped on the visit
// at sign time. Empty when no diagnosis carries medications.
func BuildPrescription(diagnoses []entity.Diagnosis) string {
	var lines []string
	for _, d := range diagnoses {
		for _, m := range d.Medications {
			line := fmt.Sprintf("%s - %d x %d days (%s)", m.MedicationName, m.Quantity, m.Days, m.Route)
			if m.Indication != "" {
				line += " - " + m.Indication
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
