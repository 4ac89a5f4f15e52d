package repository

import (
	"strings"

	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"
)

// catalogRepository serves the reference tables loaded once at process
// start. All lookups walk the tables in declaration order.
type catalogRepository struct {
	cie10       []entity.CIE10Code
	labExams    []entity.ExamCategory
	imaging     []entity.ExamCategory
	medications []entity.Medication
}

func NewCatalogRepository(
	cie10 []entity.CIE10Code,
	labExams []entity.ExamCategory,
	imaging []entity.ExamCategory,
	medications []entity.Medication,
) domainRepo.CatalogRepository {
	return &catalogRepository{
		cie10:       cie10,
		labExams:    labExams,
		imaging:     imaging,
		medications: medications,
	}
}

func (r *catalogRepository) FindCIE10ByCode(code string) (*entity.CIE10Code, error) {
	for i := range r.cie10 {
		if r.cie10[i].Code == code {
			c := r.cie10[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *catalogRepository) SearchCIE10(query string) ([]entity.CIE10Code, error) {
	q := strings.ToLower(query)
	out := []entity.CIE10Code{}
	for _, c := range r.cie10 {
		if strings.Contains(strings.ToLower(c.Code), q) || strings.Contains(strings.ToLower(c.Label), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *catalogRepository) LabExamCategories() ([]entity.ExamCategory, error) {
	return cloneCategories(r.labExams), nil
}

func (r *catalogRepository) ImagingExamCategories() ([]entity.ExamCategory, error) {
	return cloneCategories(r.imaging), nil
}

func (r *catalogRepository) FindLabExam(examID string) (*entity.CatalogExam, *entity.ExamCategory, error) {
	return findExam(r.labExams, examID)
}

func (r *catalogRepository) FindImagingExam(examID string) (*entity.CatalogExam, *entity.ExamCategory, error) {
	return findExam(r.imaging, examID)
}

func (r *catalogRepository) Medications() ([]entity.Medication, error) {
	out := make([]entity.Medication, len(r.medications))
	copy(out, r.medications)
	return out, nil
}

func (r *catalogRepository) FindMedicationByID(id string) (*entity.Medication, error) {
	for i := range r.medications {
		if r.medications[i].ID == id {
			m := r.medications[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *catalogRepository) SearchMedications(query string) ([]entity.Medication, error) {
	q := strings.ToLower(query)
	out := []entity.Medication{}
	for _, m := range r.medications {
		if strings.Contains(strings.ToLower(m.ID), q) || strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out, nil
}

func findExam(categories []entity.ExamCategory, examID string) (*entity.CatalogExam, *entity.ExamCategory, error) {
	for i := range categories {
		for j := range categories[i].Exams {
			if categories[i].Exams[j].ID == examID {
				exam := categories[i].Exams[j]
				cat := categories[i]
				return &exam, &cat, nil
			}
		}
	}
	return nil, nil, nil
}

func cloneCategories(categories []entity.ExamCategory) []entity.ExamCategory {
	out := make([]entity.ExamCategory, len(categories))
	for i, c := range categories {
		cc := c
		cc.Exams = append([]entity.CatalogExam(nil), c.Exams...)
		out[i] = cc
	}
	return out
}
