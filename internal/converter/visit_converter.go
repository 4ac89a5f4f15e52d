package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
)

// VisitToResponse converts a PatientVisit aggregate to its response DTO
func VisitToResponse(visit *entity.PatientVisit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:                    visit.ID,
		PatientID:             visit.PatientID,
		Name:                  visit.Name,
		Initials:              visit.Initials,
		Age:                   visit.Age,
		Gender:                visit.Gender,
		Phone:                 visit.Phone,
		Status:                string(visit.Status),
		Priority:              string(visit.Priority),
		RegisteredAt:          visit.RegisteredAt,
		AppointmentID:         visit.AppointmentID,
		ServiceType:           visit.ServiceType,
		ReceiptID:             visit.ReceiptID,
		AccountNumber:         visit.AccountNumber,
		TriageObservations:    visit.TriageObservations,
		Anamnesis:             visit.Anamnesis,
		WorkPlan:              visit.WorkPlan,
		ClinicalExam:          visit.ClinicalExam,
		MainSymptom:           visit.MainSymptom,
		PatientTypeEstab:      string(visit.PatientTypeEstab),
		PatientTypeService:    string(visit.PatientTypeService),
		Diagnoses:             DiagnosesToResponses(visit.Diagnoses),
		TreatmentObservations: visit.TreatmentObservations,
		NextControlDate:       visit.NextControlDate,
		MedicalNotes:          visit.MedicalNotes,
		ConsultationSignedAt:  visit.ConsultationSignedAt,
		SignatureID:           visit.SignatureID,
		NextStep:              string(visit.NextStep),
		Prescription:          visit.Prescription,
		MedicalHistory:        historyToResponses(visit.MedicalHistory),
		SurgicalHistory:       historyToResponses(visit.SurgicalHistory),
		Allergies:             visit.Allergies,
		Version:               visit.Version,
	}

	if visit.Vitals != nil {
		response.Vitals = &dto.VitalsResponse{
			Weight:        visit.Vitals.Weight,
			Height:        visit.Vitals.Height,
			Temperature:   visit.Vitals.Temperature,
			BloodPressure: visit.Vitals.BloodPressure,
		}
	}
	if visit.IllnessDuration != nil {
		response.IllnessDuration = &dto.IllnessDurationResponse{
			Value: visit.IllnessDuration.Value,
			Unit:  string(visit.IllnessDuration.Unit),
		}
	}
	if visit.RestCertificate != nil {
		response.RestCertificate = &dto.RestCertificateResponse{
			Days:      visit.RestCertificate.Days,
			StartDate: visit.RestCertificate.StartDate,
			Reason:    visit.RestCertificate.Reason,
		}
	}

	return response
}

// VisitsToResponses converts a slice of visits to response DTOs
func VisitsToResponses(visits []entity.PatientVisit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}

// DiagnosisToResponse converts a Diagnosis and its sub-orders
func DiagnosisToResponse(d *entity.Diagnosis) *dto.DiagnosisResponse {
	if d == nil {
		return nil
	}

	response := &dto.DiagnosisResponse{
		ID:           d.ID,
		CIE10Code:    d.CIE10Code,
		CIE10Label:   d.CIE10Label,
		Type:         string(d.Type),
		LabExams:     examOrdersToResponses(d.LabExams),
		ImagingExams: examOrdersToResponses(d.ImagingExams),
		Medications:  medicationOrdersToResponses(d.Medications),
	}
	return response
}

// DiagnosesToResponses converts a visit's diagnosis list
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnoses[i])
	}
	return responses
}

func examOrdersToResponses(orders []entity.ExamOrder) []dto.ExamOrderResponse {
	responses := make([]dto.ExamOrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = dto.ExamOrderResponse{
			ID:           o.ID,
			ExamID:       o.ExamID,
			ExamName:     o.ExamName,
			CategoryName: o.CategoryName,
		}
	}
	return responses
}

func medicationOrdersToResponses(orders []entity.MedicationOrder) []dto.MedicationOrderResponse {
	responses := make([]dto.MedicationOrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = dto.MedicationOrderResponse{
			ID:             o.ID,
			MedicationName: o.MedicationName,
			Quantity:       o.Quantity,
			Days:           o.Days,
			Route:          string(o.Route),
			Indication:     o.Indication,
		}
	}
	return responses
}

func historyToResponses(items []entity.HistoryItem) []dto.HistoryItemResponse {
	responses := make([]dto.HistoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.HistoryItemResponse{Label: item.Label, Color: item.Color}
	}
	return responses
}
