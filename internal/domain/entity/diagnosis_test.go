package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestToggleLabExam(t *testing.T) {
	d := &Diagnosis{ID: uuid.New()}

	d.ToggleLabExam("hem-01", "Hemograma completo", "Hematologia")
	if len(d.LabExams) != 1 {
		t.Fatalf("expected 1 lab exam, got %d", len(d.LabExams))
	}
	if d.LabExams[0].ExamName != "Hemograma completo" {
		t.Errorf("exam name = %s", d.LabExams[0].ExamName)
	}

	// toggling the same id removes it
	d.ToggleLabExam("hem-01", "Hemograma completo", "Hematologia")
	if len(d.LabExams) != 0 {
		t.Fatalf("expected 0 lab exams after second toggle, got %d", len(d.LabExams))
	}
}

func TestToggleExamPreservesOrder(t *testing.T) {
	d := &Diagnosis{ID: uuid.New()}
	d.ToggleLabExam("hem-01", "Hemograma completo", "Hematologia")
	d.ToggleLabExam("bio-01", "Glucosa en ayunas", "Bioquimica")
	d.ToggleLabExam("ori-01", "Examen completo de orina", "Orina")

	d.ToggleLabExam("bio-01", "Glucosa en ayunas", "Bioquimica")
	if len(d.LabExams) != 2 {
		t.Fatalf("expected 2 lab exams, got %d", len(d.LabExams))
	}
	if d.LabExams[0].ExamID != "hem-01" || d.LabExams[1].ExamID != "ori-01" {
		t.Errorf("exam order not preserved: %s, %s", d.LabExams[0].ExamID, d.LabExams[1].ExamID)
	}
}

func TestToggleImagingExamIndependentOfLab(t *testing.T) {
	d := &Diagnosis{ID: uuid.New()}
	d.ToggleLabExam("hem-01", "Hemograma completo", "Hematologia")
	d.ToggleImagingExam("rx-01", "Radiografia de torax PA", "Radiografia")

	if len(d.LabExams) != 1 || len(d.ImagingExams) != 1 {
		t.Fatalf("lab=%d imaging=%d, want 1 and 1", len(d.LabExams), len(d.ImagingExams))
	}

	d.ToggleImagingExam("rx-01", "Radiografia de torax PA", "Radiografia")
	if len(d.LabExams) != 1 {
		t.Error("imaging toggle must not touch lab exams")
	}
}

func TestRemoveMedication(t *testing.T) {
	d := &Diagnosis{ID: uuid.New()}
	first := MedicationOrder{ID: uuid.New(), MedicationName: "Losartan 50mg", Quantity: 30, Days: 30, Route: RouteOral}
	second := MedicationOrder{ID: uuid.New(), MedicationName: "Paracetamol 500mg", Quantity: 10, Days: 5, Route: RouteOral}
	d.AddMedication(first)
	d.AddMedication(second)

	if !d.RemoveMedication(first.ID) {
		t.Fatal("RemoveMedication returned false for existing line")
	}
	if len(d.Medications) != 1 || d.Medications[0].MedicationName != "Paracetamol 500mg" {
		t.Errorf("unexpected medications after removal: %+v", d.Medications)
	}

	if d.RemoveMedication(first.ID) {
		t.Error("RemoveMedication returned true for missing line")
	}
}
