package handler

import (
	"net/http"

	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListLogs returns the workflow audit trail, optionally filtered by
// ?action=
func (h *AuditLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.ListLogs(r.Context(), r.URL.Query().Get("action"))
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}
	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
