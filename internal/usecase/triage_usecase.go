package usecase

import (
	"context"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TriageUsecase moves visits through the vitals intake stage
type TriageUsecase interface {
	StartTriage(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)
	CompleteTriage(ctx context.Context, actorID string, visitID uuid.UUID, req *dto.CompleteTriageRequest) (*dto.VisitResponse, error)
}

type triageUsecase struct {
	log       *logrus.Logger
	visitRepo repository.VisitRepository
	audit     service.AuditService
}

func NewTriageUsecase(
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	audit service.AuditService,
) TriageUsecase {
	return &triageUsecase{
		log:       log,
		visitRepo: visitRepo,
		audit:     audit,
	}
}

// StartTriage is triggered when the triage ward opens the visit
func (u *triageUsecase) StartTriage(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	if err := visit.TransitionTo(entity.VisitStatusInTriage); err != nil {
		return nil, err
	}
	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionTriageStart, map[string]interface{}{
		"visit_id": visit.ID.String(),
	})
	return converter.VisitToResponse(visit), nil
}

// CompleteTriage writes vitals and observations and advances the visit
// to triaged. Priority may be re-assessed here.
func (u *triageUsecase) CompleteTriage(ctx context.Context, actorID string, visitID uuid.UUID, req *dto.CompleteTriageRequest) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	if err := visit.TransitionTo(entity.VisitStatusTriaged); err != nil {
		return nil, err
	}

	visit.Vitals = &entity.Vitals{
		Weight:        req.Vitals.Weight,
		Height:        req.Vitals.Height,
		Temperature:   req.Vitals.Temperature,
		BloodPressure: req.Vitals.BloodPressure,
	}
	visit.TriageObservations = req.Observations
	if req.Priority != "" {
		visit.Priority = entity.VisitPriority(req.Priority)
	}

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionTriageComplete, map[string]interface{}{
		"visit_id": visit.ID.String(),
		"priority": string(visit.Priority),
	})
	u.log.Infof("Triage completed: visit=%s, priority=%s", visit.ID, visit.Priority)

	return converter.VisitToResponse(visit), nil
}
