package repository

import (
	"testing"

	domainRepo "medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/seed"
)

func seededCatalog() domainRepo.CatalogRepository {
	return NewCatalogRepository(
		seed.CIE10Catalog(),
		seed.LabExamCatalog(),
		seed.ImagingExamCatalog(),
		seed.MedicationCatalog(),
	)
}

func TestFindCIE10ByCode(t *testing.T) {
	repo := seededCatalog()

	code, err := repo.FindCIE10ByCode("I10")
	if err != nil {
		t.Fatalf("FindCIE10ByCode: %v", err)
	}
	if code == nil || code.Label != "Hipertension esencial (primaria)" {
		t.Fatalf("unexpected code: %+v", code)
	}

	missing, err := repo.FindCIE10ByCode("X99")
	if err != nil {
		t.Fatalf("FindCIE10ByCode: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown code")
	}
}

func TestSearchCIE10CaseInsensitive(t *testing.T) {
	repo := seededCatalog()

	byCode, err := repo.SearchCIE10("i10")
	if err != nil {
		t.Fatalf("SearchCIE10: %v", err)
	}
	if len(byCode) != 1 || byCode[0].Code != "I10" {
		t.Fatalf("search by lowercase code: %+v", byCode)
	}

	byLabel, err := repo.SearchCIE10("GASTRITIS")
	if err != nil {
		t.Fatalf("SearchCIE10: %v", err)
	}
	if len(byLabel) != 1 || byLabel[0].Code != "K29.7" {
		t.Fatalf("search by label: %+v", byLabel)
	}
}

func TestSearchCIE10EmptyQueryReturnsAll(t *testing.T) {
	repo := seededCatalog()
	all, err := repo.SearchCIE10("")
	if err != nil {
		t.Fatalf("SearchCIE10: %v", err)
	}
	if len(all) != len(seed.CIE10Catalog()) {
		t.Errorf("expected full catalog, got %d entries", len(all))
	}
	if all[0].Code != "J06.9" {
		t.Errorf("declaration order not kept, first = %s", all[0].Code)
	}
}

func TestFindLabExamResolvesCategory(t *testing.T) {
	repo := seededCatalog()

	exam, category, err := repo.FindLabExam("bio-02")
	if err != nil {
		t.Fatalf("FindLabExam: %v", err)
	}
	if exam == nil || exam.Name != "Perfil lipidico" {
		t.Fatalf("unexpected exam: %+v", exam)
	}
	if category == nil || category.Name != "Bioquimica" {
		t.Fatalf("unexpected category: %+v", category)
	}

	// a lab id must not resolve through the imaging table
	exam, _, err = repo.FindImagingExam("bio-02")
	if err != nil {
		t.Fatalf("FindImagingExam: %v", err)
	}
	if exam != nil {
		t.Error("lab exam id resolved in imaging catalog")
	}
}

func TestFindMedicationByID(t *testing.T) {
	repo := seededCatalog()

	medication, err := repo.FindMedicationByID("med-06")
	if err != nil {
		t.Fatalf("FindMedicationByID: %v", err)
	}
	if medication == nil || medication.Name != "Losartan 50mg" {
		t.Fatalf("unexpected medication: %+v", medication)
	}

	missing, err := repo.FindMedicationByID("med-99")
	if err != nil {
		t.Fatalf("FindMedicationByID: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown medication")
	}
}

func TestSearchMedications(t *testing.T) {
	repo := seededCatalog()

	matches, err := repo.SearchMedications("losartan")
	if err != nil {
		t.Fatalf("SearchMedications: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "med-06" {
		t.Fatalf("unexpected matches: %+v", matches)
	}

	all, err := repo.SearchMedications("")
	if err != nil {
		t.Fatalf("SearchMedications: %v", err)
	}
	if len(all) != len(seed.MedicationCatalog()) {
		t.Errorf("empty query should return full list, got %d", len(all))
	}
}
