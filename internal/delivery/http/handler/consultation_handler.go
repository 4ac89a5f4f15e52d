package handler

import (
	"encoding/json"
	"net/http"

	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/delivery/http/middleware"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"
	"medcore-clinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// consultationError maps the errors specific to consultation editing on
// top of the shared visit mapping
func consultationError(w http.ResponseWriter, err error) bool {
	if visitError(w, err) {
		return true
	}
	switch err {
	case usecase.ErrVisitAlreadySigned:
		response.Conflict(w, "Consultation has already been signed")
	case usecase.ErrVisitNotEditable:
		response.Conflict(w, "Visit is not in consultation")
	case usecase.ErrDiagnosisNotFound:
		response.NotFound(w, "Diagnosis not found")
	case usecase.ErrMedicationLineNotFound:
		response.NotFound(w, "Medication line not found")
	case usecase.ErrUnknownCIE10Code:
		response.NotFound(w, "CIE-10 code not found in catalog")
	case usecase.ErrUnknownExam:
		response.NotFound(w, "Exam not found in catalog")
	case usecase.ErrUnknownMedication:
		response.NotFound(w, "Medication not found in catalog")
	default:
		return false
	}
	return true
}

func (h *ConsultationHandler) StartConsultation(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	visit, err := h.consultationUsecase.StartConsultation(r.Context(), actorID, visitID)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to start consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation started", visit)
}

func (h *ConsultationHandler) UpdateClinicalData(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.UpdateClinicalDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.UpdateClinicalData(r.Context(), visitID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to update clinical data")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinical data updated", visit)
}

func (h *ConsultationHandler) AddDiagnosis(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.AddDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.AddDiagnosis(r.Context(), visitID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to add diagnosis")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Diagnosis added", visit)
}

func (h *ConsultationHandler) RemoveDiagnosis(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	visit, err := h.consultationUsecase.RemoveDiagnosis(r.Context(), visitID, diagnosisID)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to remove diagnosis")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis removed", visit)
}

func (h *ConsultationHandler) SetDiagnosisType(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req dto.SetDiagnosisTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.SetDiagnosisType(r.Context(), visitID, diagnosisID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to set diagnosis type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnosis type updated", visit)
}

func (h *ConsultationHandler) ToggleLabExam(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req dto.ToggleExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.ToggleLabExam(r.Context(), visitID, diagnosisID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to toggle lab exam")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab exam toggled", visit)
}

func (h *ConsultationHandler) ToggleImagingExam(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req dto.ToggleExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.ToggleImagingExam(r.Context(), visitID, diagnosisID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to toggle imaging exam")
		}
		return
	}

	response.Success(w, http.StatusOK, "Imaging exam toggled", visit)
}

func (h *ConsultationHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req dto.AddMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.consultationUsecase.AddMedication(r.Context(), visitID, diagnosisID, &req)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to add medication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medication added", visit)
}

func (h *ConsultationHandler) RemoveMedication(w http.ResponseWriter, r *http.Request) {
	visitID, diagnosisID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	medicationID, err := uuid.Parse(mux.Vars(r)["medicationId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medication ID", nil)
		return
	}

	visit, err := h.consultationUsecase.RemoveMedication(r.Context(), visitID, diagnosisID, medicationID)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to remove medication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medication removed", visit)
}

func (h *ConsultationHandler) PreviewOrders(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	orders, err := h.consultationUsecase.PreviewOrders(r.Context(), visitID)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to preview orders")
		}
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// SignConsultation finalizes the encounter. Blocks until the signature
// stub resolves.
func (h *ConsultationHandler) SignConsultation(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	result, err := h.consultationUsecase.SignConsultation(r.Context(), actorID, visitID)
	if err != nil {
		if !consultationError(w, err) {
			response.InternalServerError(w, "Failed to sign consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation signed", result)
}

func (h *ConsultationHandler) pathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	vars := mux.Vars(r)
	visitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	diagnosisID, err := uuid.Parse(vars["diagnosisId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnosis ID", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return visitID, diagnosisID, true
}
