package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
)

// CIE10ToResponses converts diagnosis catalog entries
func CIE10ToResponses(codes []entity.CIE10Code) []dto.CIE10Response {
	responses := make([]dto.CIE10Response, len(codes))
	for i, c := range codes {
		responses[i] = dto.CIE10Response{Code: c.Code, Label: c.Label}
	}
	return responses
}

// ExamCategoriesToResponses converts lab or imaging catalog categories
func ExamCategoriesToResponses(categories []entity.ExamCategory) []dto.ExamCategoryResponse {
	responses := make([]dto.ExamCategoryResponse, len(categories))
	for i, c := range categories {
		exams := make([]dto.CatalogExamResponse, len(c.Exams))
		for j, e := range c.Exams {
			exams[j] = dto.CatalogExamResponse{ID: e.ID, Name: e.Name}
		}
		responses[i] = dto.ExamCategoryResponse{ID: c.ID, Name: c.Name, Exams: exams}
	}
	return responses
}

// MedicationsToResponses converts the medication catalog
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, m := range medications {
		responses[i] = dto.MedicationResponse{
			ID:           m.ID,
			Name:         m.Name,
			Presentation: m.Presentation,
			DefaultRoute: string(m.DefaultRoute),
		}
	}
	return responses
}
