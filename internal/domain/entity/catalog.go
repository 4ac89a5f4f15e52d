package entity

// CIE10Code is one entry of the diagnosis coding catalog
type CIE10Code struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// CatalogExam is one named exam inside a category
type CatalogExam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExamCategory groups lab or imaging exams under a named heading
type ExamCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Exams []CatalogExam `json:"exams"`
}

// Medication is one entry of the dispensable medication catalog
type Medication struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Presentation string          `json:"presentation"`
	DefaultRoute MedicationRoute `json:"default_route"`
}
