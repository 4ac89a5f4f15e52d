package converter

import (
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
)

// AuditLogsToResponses converts the audit trail entries
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt,
		}
	}
	return responses
}
