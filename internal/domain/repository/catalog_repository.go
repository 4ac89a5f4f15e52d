package repository

import (
	"medcore-clinic/internal/domain/entity"
)

// CatalogRepository is the read-only reference data store. Searches are
// case-insensitive substring matches on code or label, returned in
// catalog-declaration order with no ranking.
type CatalogRepository interface {
	FindCIE10ByCode(code string) (*entity.CIE10Code, error)
	SearchCIE10(query string) ([]entity.CIE10Code, error)
	LabExamCategories() ([]entity.ExamCategory, error)
	ImagingExamCategories() ([]entity.ExamCategory, error)
	// FindLabExam and FindImagingExam resolve an exam id to the exam and
	// its owning category; (nil, nil, nil) when absent.
	FindLabExam(examID string) (*entity.CatalogExam, *entity.ExamCategory, error)
	FindImagingExam(examID string) (*entity.CatalogExam, *entity.ExamCategory, error)
	Medications() ([]entity.Medication, error)
	FindMedicationByID(id string) (*entity.Medication, error)
	SearchMedications(query string) ([]entity.Medication, error)
}
