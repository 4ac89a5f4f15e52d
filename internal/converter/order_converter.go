package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/service"
)

// OrderSetToResponse converts the generated dispatch orders to the
// response DTO
func OrderSetToResponse(set service.OrderSet) dto.OrderSetResponse {
	response := dto.OrderSetResponse{
		LabOrders:      make([]dto.LabOrderResponse, len(set.LabOrders)),
		ImagingOrders:  make([]dto.ImagingOrderResponse, len(set.ImagingOrders)),
		PharmacyOrders: make([]dto.PharmacyOrderResponse, len(set.PharmacyOrders)),
	}

	for i, o := range set.LabOrders {
		response.LabOrders[i] = dto.LabOrderResponse{
			DiagnosisCode:  o.DiagnosisCode,
			DiagnosisLabel: o.DiagnosisLabel,
			Exams:          orderExamsToResponses(o.Exams),
		}
	}
	for i, o := range set.ImagingOrders {
		response.ImagingOrders[i] = dto.ImagingOrderResponse{
			DiagnosisCode:  o.DiagnosisCode,
			DiagnosisLabel: o.DiagnosisLabel,
			Exams:          orderExamsToResponses(o.Exams),
		}
	}
	for i, o := range set.PharmacyOrders {
		medications := make([]dto.OrderMedicationResponse, len(o.Medications))
		for j, m := range o.Medications {
			medications[j] = dto.OrderMedicationResponse{
				Name:       m.Name,
				Quantity:   m.Quantity,
				Days:       m.Days,
				Route:      m.Route,
				Indication: m.Indication,
			}
		}
		response.PharmacyOrders[i] = dto.PharmacyOrderResponse{
			DiagnosisCode:  o.DiagnosisCode,
			DiagnosisLabel: o.DiagnosisLabel,
			Medications:    medications,
		}
	}

	return response
}

func orderExamsToResponses(exams []service.OrderExam) []dto.OrderExamResponse {
	responses := make([]dto.OrderExamResponse, len(exams))
	for i, e := range exams {
		responses[i] = dto.OrderExamResponse{ExamName: e.ExamName, CategoryName: e.CategoryName}
	}
	return responses
}
