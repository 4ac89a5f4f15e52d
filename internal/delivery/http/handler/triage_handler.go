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

type TriageHandler struct {
	triageUsecase usecase.TriageUsecase
	validator     *validator.CustomValidator
}

func NewTriageHandler(triageUsecase usecase.TriageUsecase, validator *validator.CustomValidator) *TriageHandler {
	return &TriageHandler{
		triageUsecase: triageUsecase,
		validator:     validator,
	}
}

func (h *TriageHandler) StartTriage(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	visit, err := h.triageUsecase.StartTriage(r.Context(), actorID, visitID)
	if err != nil {
		if !visitError(w, err) {
			response.InternalServerError(w, "Failed to start triage")
		}
		return
	}

	response.Success(w, http.StatusOK, "Triage started", visit)
}

func (h *TriageHandler) CompleteTriage(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.CompleteTriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	visit, err := h.triageUsecase.CompleteTriage(r.Context(), actorID, visitID, &req)
	if err != nil {
		if !visitError(w, err) {
			response.InternalServerError(w, "Failed to complete triage")
		}
		return
	}

	response.Success(w, http.StatusOK, "Triage completed", visit)
}
