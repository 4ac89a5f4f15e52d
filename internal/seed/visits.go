package seed

import (
	"time"

	"medcore-clinic/internal/domain/entity"

	"github.com/google/uuid"
)

// registeredAt puts a seed visit at the given clock time today
func registeredAt(hour, minute int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

// Visits returns the demo visit collection spanning every workflow stage
func Visits() []entity.PatientVisit {
	return []entity.PatientVisit{
		{
			ID:           uuid.New(),
			Name:         "Ana Martinez",
			Initials:     "AM",
			Age:          45,
			Gender:       "Female",
			PatientID:    "#MC-2024-0901",
			Phone:        "+1 (555) 111-2233",
			Status:       entity.VisitStatusRegistered,
			Priority:     entity.PriorityMedium,
			RegisteredAt: registeredAt(8, 15),
			MedicalHistory: []entity.HistoryItem{
				{Label: "Diabetes Type 2", Color: "red"},
			},
			SurgicalHistory: []entity.HistoryItem{},
			Allergies:       "Penicillin",
		},
		{
			ID:           uuid.New(),
			Name:         "Jorge Ramirez",
			Initials:     "JR",
			Age:          62,
			Gender:       "Male",
			PatientID:    "#MC-2024-0902",
			Phone:        "+1 (555) 222-3344",
			Status:       entity.VisitStatusRegistered,
			Priority:     entity.PriorityHigh,
			RegisteredAt: registeredAt(8, 30),
			MedicalHistory: []entity.HistoryItem{
				{Label: "Hypertension", Color: "red"},
				{Label: "COPD", Color: "slate"},
			},
			SurgicalHistory: []entity.HistoryItem{
				{Label: "Bypass 2019", Color: "amber"},
			},
			Allergies: "NIEGA RAM",
		},
		{
			ID:              uuid.New(),
			Name:            "Lucia Fernandez",
			Initials:        "LF",
			Age:             28,
			Gender:          "Female",
			PatientID:       "#MC-2024-0903",
			Phone:           "+1 (555) 333-4455",
			Status:          entity.VisitStatusInTriage,
			Priority:        entity.PriorityLow,
			RegisteredAt:    registeredAt(7, 45),
			MedicalHistory:  []entity.HistoryItem{},
			SurgicalHistory: []entity.HistoryItem{},
			Allergies:       "NIEGA RAM",
		},
		{
			ID:           uuid.New(),
			Name:         "Michael Ray",
			Initials:     "MR",
			Age:          35,
			Gender:       "Male",
			PatientID:    "#MC-2024-0842",
			Phone:        "+1 (555) 012-3456",
			Status:       entity.VisitStatusTriaged,
			Priority:     entity.PriorityMedium,
			RegisteredAt: registeredAt(7, 30),
			Vitals: &entity.Vitals{
				Weight: "78", Height: "182", Temperature: "36.5", BloodPressure: "120/80",
			},
			TriageObservations: "Patient complains of persistent chest pain radiating to the left arm. No fever. Vitals stable.",
			MedicalHistory: []entity.HistoryItem{
				{Label: "Hypertension", Color: "red"},
				{Label: "IMA", Color: "slate"},
			},
			SurgicalHistory: []entity.HistoryItem{
				{Label: "Septoplastia", Color: "amber"},
				{Label: "Hemor.", Color: "amber"},
			},
			Allergies: "NIEGA RAM",
		},
		{
			ID:           uuid.New(),
			Name:         "Carmen Diaz",
			Initials:     "CD",
			Age:          50,
			Gender:       "Female",
			PatientID:    "#MC-2024-0904",
			Phone:        "+1 (555) 444-5566",
			Status:       entity.VisitStatusTriaged,
			Priority:     entity.PriorityHigh,
			RegisteredAt: registeredAt(7, 0),
			Vitals: &entity.Vitals{
				Weight: "65", Height: "160", Temperature: "37.8", BloodPressure: "140/90",
			},
			TriageObservations: "Fever since yesterday evening. Headache and body aches. Elevated BP noted.",
			MedicalHistory: []entity.HistoryItem{
				{Label: "Migraine", Color: "blue"},
			},
			SurgicalHistory: []entity.HistoryItem{},
			Allergies:       "Sulfa drugs",
		},
		{
			ID:           uuid.New(),
			Name:         "Roberto Vargas",
			Initials:     "RV",
			Age:          41,
			Gender:       "Male",
			PatientID:    "#MC-2024-0905",
			Phone:        "+1 (555) 555-6677",
			Status:       entity.VisitStatusInConsultation,
			Priority:     entity.PriorityMedium,
			RegisteredAt: registeredAt(6, 45),
			Vitals: &entity.Vitals{
				Weight: "90", Height: "175", Temperature: "36.7", BloodPressure: "130/85",
			},
			TriageObservations: "Recurring lower back pain. Patient reports pain level 6/10.",
			MedicalHistory: []entity.HistoryItem{
				{Label: "Lumbalgia", Color: "slate"},
			},
			SurgicalHistory: []entity.HistoryItem{},
			Allergies:       "NIEGA RAM",
		},
		{
			ID:           uuid.New(),
			Name:         "Elena Suarez",
			Initials:     "ES",
			Age:          55,
			Gender:       "Female",
			PatientID:    "#MC-2024-0906",
			Phone:        "+1 (555) 666-7788",
			Status:       entity.VisitStatusPostConsultation,
			Priority:     entity.PriorityMedium,
			RegisteredAt: registeredAt(6, 30),
			Vitals: &entity.Vitals{
				Weight: "70", Height: "165", Temperature: "36.4", BloodPressure: "125/82",
			},
			TriageObservations: "Routine follow-up. No acute complaints.",
			Anamnesis:          "Follow-up for controlled hypertension. Patient reports good medication adherence.",
			WorkPlan:           "Continue current medication. Repeat labs in 3 months.",
			Prescription:       "Losartan 50mg - 1 tablet daily\nAmlodipine 5mg - 1 tablet daily",
			NextStep:           entity.NextStepFarmacia,
			MedicalHistory: []entity.HistoryItem{
				{Label: "Hypertension", Color: "red"},
			},
			SurgicalHistory: []entity.HistoryItem{},
			Allergies:       "NIEGA RAM",
		},
		{
			ID:           uuid.New(),
			Name:         "Diego Morales",
			Initials:     "DM",
			Age:          38,
			Gender:       "Male",
			PatientID:    "#MC-2024-0907",
			Phone:        "+1 (555) 777-8899",
			Status:       entity.VisitStatusPostConsultation,
			Priority:     entity.PriorityLow,
			RegisteredAt: registeredAt(6, 0),
			Vitals: &entity.Vitals{
				Weight: "82", Height: "178", Temperature: "36.6", BloodPressure: "118/76",
			},
			TriageObservations: "Routine check. No issues found.",
			Anamnesis:          "Annual physical exam. No complaints. All systems review unremarkable.",
			WorkPlan:           "Order CBC and lipid panel. Schedule follow-up in 12 months.",
			NextStep:           entity.NextStepLaboratorio,
			MedicalHistory:     []entity.HistoryItem{},
			SurgicalHistory:    []entity.HistoryItem{},
			Allergies:          "NIEGA RAM",
		},
	}
}
