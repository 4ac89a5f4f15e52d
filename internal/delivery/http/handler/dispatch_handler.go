package handler

import (
	"context"
	"net/http"

	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/delivery/http/middleware"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DispatchHandler struct {
	dispatchUsecase usecase.DispatchUsecase
}

func NewDispatchHandler(dispatchUsecase usecase.DispatchUsecase) *DispatchHandler {
	return &DispatchHandler{
		dispatchUsecase: dispatchUsecase,
	}
}

func (h *DispatchHandler) DispatchPharmacy(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.dispatchUsecase.DispatchPharmacy, "Medications dispatched", "Failed to dispatch medications")
}

func (h *DispatchHandler) ConfirmLaboratory(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.dispatchUsecase.ConfirmLaboratory, "Laboratory confirmed", "Failed to confirm laboratory")
}

func (h *DispatchHandler) Discharge(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.dispatchUsecase.Discharge, "Patient discharged", "Failed to discharge patient")
}

type dispatchFunc func(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)

func (h *DispatchHandler) handle(w http.ResponseWriter, r *http.Request, fn dispatchFunc, okMsg, failMsg string) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	visit, err := fn(r.Context(), actorID, visitID)
	if err != nil {
		switch {
		case err == usecase.ErrWrongWard:
			response.Conflict(w, "Visit is not routed to this ward")
		case visitError(w, err):
		default:
			response.InternalServerError(w, failMsg)
		}
		return
	}

	response.Success(w, http.StatusOK, okMsg, visit)
}
