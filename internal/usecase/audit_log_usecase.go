package usecase

import (
	"context"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditLogUsecase reads back the workflow audit trail
type AuditLogUsecase interface {
	ListLogs(ctx context.Context, action string) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:       log,
		auditRepo: auditRepo,
	}
}

// ListLogs returns the trail in insertion order, optionally filtered to
// one action
func (u *auditLogUsecase) ListLogs(ctx context.Context, action string) (*dto.AuditLogListResponse, error) {
	var logs []entity.AuditLog
	var err error
	if action == "" {
		logs, err = u.auditRepo.FindAll()
	} else {
		logs, err = u.auditRepo.FindByAction(action)
	}
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}
	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
