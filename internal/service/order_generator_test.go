package service

import (
	"testing"

	"medcore-clinic/internal/domain/entity"

	"github.com/google/uuid"
)

func hypertensionDiagnosis() entity.Diagnosis {
	return entity.Diagnosis{
		ID:         uuid.New(),
		CIE10Code:  "I10",
		CIE10Label: "Hipertension esencial (primaria)",
		Type:       entity.DiagnosisDefinitivo,
		Medications: []entity.MedicationOrder{
			{ID: uuid.New(), MedicationName: "Losartan 50mg", Quantity: 30, Days: 30, Route: entity.RouteOral, Indication: "1 tableta cada 24 horas"},
		},
	}
}

func headacheDiagnosis() entity.Diagnosis {
	return entity.Diagnosis{
		ID:         uuid.New(),
		CIE10Code:  "R51",
		CIE10Label: "Cefalea",
		Type:       entity.DiagnosisPresuntivo,
		LabExams: []entity.ExamOrder{
			{ID: uuid.New(), ExamID: "hem-01", ExamName: "Hemograma completo", CategoryName: "Hematologia"},
		},
		ImagingExams: []entity.ExamOrder{
			{ID: uuid.New(), ExamID: "tac-01", ExamName: "TAC cerebral simple", CategoryName: "Tomografia"},
		},
	}
}

func TestGenerateOrdersEmpty(t *testing.T) {
	set := GenerateOrders(nil)
	if set.LabOrders == nil || set.ImagingOrders == nil || set.PharmacyOrders == nil {
		t.Fatal("empty input must yield empty slices, not nil")
	}
	if len(set.LabOrders)+len(set.ImagingOrders)+len(set.PharmacyOrders) != 0 {
		t.Errorf("expected no orders, got %+v", set)
	}
}

func TestGenerateOrdersPartitioning(t *testing.T) {
	set := GenerateOrders([]entity.Diagnosis{hypertensionDiagnosis(), headacheDiagnosis()})

	if len(set.PharmacyOrders) != 1 {
		t.Fatalf("expected 1 pharmacy order, got %d", len(set.PharmacyOrders))
	}
	if set.PharmacyOrders[0].DiagnosisCode != "I10" {
		t.Errorf("pharmacy order diagnosis = %s, want I10", set.PharmacyOrders[0].DiagnosisCode)
	}
	if set.PharmacyOrders[0].Medications[0].Name != "Losartan 50mg" {
		t.Errorf("medication = %s", set.PharmacyOrders[0].Medications[0].Name)
	}

	if len(set.LabOrders) != 1 || set.LabOrders[0].DiagnosisCode != "R51" {
		t.Fatalf("expected 1 lab order for R51, got %+v", set.LabOrders)
	}
	if len(set.ImagingOrders) != 1 || set.ImagingOrders[0].Exams[0].ExamName != "TAC cerebral simple" {
		t.Fatalf("expected 1 imaging order, got %+v", set.ImagingOrders)
	}
}

func TestGenerateOrdersOmitsChannelsWithoutContent(t *testing.T) {
	// the pharmacy-only diagnosis must not appear in lab or imaging
	set := GenerateOrders([]entity.Diagnosis{hypertensionDiagnosis()})
	if len(set.LabOrders) != 0 || len(set.ImagingOrders) != 0 {
		t.Errorf("diagnosis without exams leaked into exam channels: %+v", set)
	}
}

func TestGenerateOrdersNoMergeAcrossDuplicateCodes(t *testing.T) {
	set := GenerateOrders([]entity.Diagnosis{hypertensionDiagnosis(), hypertensionDiagnosis()})
	if len(set.PharmacyOrders) != 2 {
		t.Errorf("diagnoses sharing a code must stay separate orders, got %d", len(set.PharmacyOrders))
	}
}

func TestDeriveNextStep(t *testing.T) {
	tests := []struct {
		name      string
		diagnoses []entity.Diagnosis
		want      entity.NextStep
	}{
		{"no diagnoses", nil, entity.NextStepSalida},
		{"exams only", []entity.Diagnosis{headacheDiagnosis()}, entity.NextStepLaboratorio},
		{"medications only", []entity.Diagnosis{hypertensionDiagnosis()}, entity.NextStepFarmacia},
		{"medications win over exams", []entity.Diagnosis{headacheDiagnosis(), hypertensionDiagnosis()}, entity.NextStepFarmacia},
		{"diagnosis without orders", []entity.Diagnosis{{ID: uuid.New(), CIE10Code: "Z00.0"}}, entity.NextStepSalida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveNextStep(tt.diagnoses); got != tt.want {
				t.Errorf("DeriveNextStep = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildPrescription(t *testing.T) {
	d := hypertensionDiagnosis()
	d.Medications = append(d.Medications, entity.MedicationOrder{
		ID:             uuid.New(),
		MedicationName: "Paracetamol 500mg",
		Quantity:       10,
		Days:           5,
		Route:          entity.RouteOral,
	})

	got := BuildPrescription([]entity.Diagnosis{d})
	want := "Losartan 50mg - 30 x 30 days (oral) - 1 tableta cada 24 horas\nParacetamol 500mg - 10 x 5 days (oral)"
	if got != want {
		t.Errorf("prescription:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildPrescriptionEmpty(t *testing.T) {
	if got := BuildPrescription([]entity.Diagnosis{headacheDiagnosis()}); got != "" {
		t.Errorf("expected empty prescription, got %q", got)
	}
}
