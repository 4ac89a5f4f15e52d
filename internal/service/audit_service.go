package service

import (
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService records workflow events into the in-memory audit trail.
// Recording never fails the calling operation; errors are logged only.
type AuditService interface {
	Record(userID, action string, metadata map[string]interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(userID, action string, metadata map[string]interface{}) {
	entry := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
