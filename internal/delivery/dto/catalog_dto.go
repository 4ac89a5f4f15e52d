package dto

// Response DTOs

type CIE10Response struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type CIE10ListResponse struct {
	Codes []CIE10Response `json:"codes"`
	Total int             `json:"total"`
}

type CatalogExamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ExamCategoryResponse struct {
	ID    string                `json:"id"`
	Name  string                `json:"name"`
	Exams []CatalogExamResponse `json:"exams"`
}

type ExamCategoryListResponse struct {
	Categories []ExamCategoryResponse `json:"categories"`
	Total      int                    `json:"total"`
}

type MedicationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Presentation string `json:"presentation"`
	DefaultRoute string `json:"default_route"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}
