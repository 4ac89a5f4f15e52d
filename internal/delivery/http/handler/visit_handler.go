package handler

import (
	"net/http"
	"strings"

	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VisitHandler struct {
	queueUsecase usecase.QueueUsecase
}

func NewVisitHandler(queueUsecase usecase.QueueUsecase) *VisitHandler {
	return &VisitHandler{
		queueUsecase: queueUsecase,
	}
}

func (h *VisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	visit, err := h.queueUsecase.GetVisit(r.Context(), visitID)
	if err != nil {
		if !visitError(w, err) {
			response.InternalServerError(w, "Failed to get visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

// ListVisits returns every visit, optionally filtered by a comma
// separated status list (?status=registered,in_triage)
func (h *VisitHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	statusParam := r.URL.Query().Get("status")
	if statusParam == "" {
		visits, err := h.queueUsecase.ListVisits(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to list visits")
			return
		}
		response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
		return
	}

	var statuses []entity.VisitStatus
	for _, s := range strings.Split(statusParam, ",") {
		statuses = append(statuses, entity.VisitStatus(strings.TrimSpace(s)))
	}

	visits, err := h.queueUsecase.ListByStatus(r.Context(), statuses...)
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}
	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) TriageQueue(w http.ResponseWriter, r *http.Request) {
	visits, err := h.queueUsecase.TriageQueue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list triage queue")
		return
	}
	response.Success(w, http.StatusOK, "Triage queue retrieved successfully", visits)
}

func (h *VisitHandler) ConsultationQueue(w http.ResponseWriter, r *http.Request) {
	visits, err := h.queueUsecase.ConsultationQueue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list consultation queue")
		return
	}
	response.Success(w, http.StatusOK, "Consultation queue retrieved successfully", visits)
}

func (h *VisitHandler) PharmacyQueue(w http.ResponseWriter, r *http.Request) {
	visits, err := h.queueUsecase.PharmacyQueue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pharmacy queue")
		return
	}
	response.Success(w, http.StatusOK, "Pharmacy queue retrieved successfully", visits)
}

func (h *VisitHandler) LaboratoryQueue(w http.ResponseWriter, r *http.Request) {
	visits, err := h.queueUsecase.LaboratoryQueue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list laboratory queue")
		return
	}
	response.Success(w, http.StatusOK, "Laboratory queue retrieved successfully", visits)
}
