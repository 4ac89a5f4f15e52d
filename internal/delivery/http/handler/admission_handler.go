package handler

import (
	"encoding/json"
	"net/http"

	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/delivery/http/middleware"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"
	"medcore-clinic/pkg/validator"
)

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

// RegisterVisit admits a walk-in or appointment patient. Blocks until
// the billing stub resolves with a receipt.
func (h *AdmissionHandler) RegisterVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	visit, err := h.admissionUsecase.RegisterVisit(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to register visit")
		return
	}

	response.Success(w, http.StatusCreated, "Visit registered successfully", visit)
}
