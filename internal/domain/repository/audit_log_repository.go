package repository

import (
	"medcore-clinic/internal/domain/entity"
)

// AuditLogRepository stores the append-only workflow audit trail
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	FindAll() ([]entity.AuditLog, error)
	FindByAction(action string) ([]entity.AuditLog, error)
}
