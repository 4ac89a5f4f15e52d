package usecase

import (
	"context"
	"errors"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrWrongWard = errors.New("visit is not routed to this ward")

// DispatchUsecase closes out visits after consultation: pharmacy dispatch,
// laboratory confirmation, and plain discharge. Each moves the visit to
// its terminal completed state.
type DispatchUsecase interface {
	DispatchPharmacy(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)
	ConfirmLaboratory(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)
	Discharge(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)
}

type dispatchUsecase struct {
	log       *logrus.Logger
	visitRepo repository.VisitRepository
	audit     service.AuditService
}

func NewDispatchUsecase(
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	audit service.AuditService,
) DispatchUsecase {
	return &dispatchUsecase{
		log:       log,
		visitRepo: visitRepo,
		audit:     audit,
	}
}

// DispatchPharmacy hands out the prescribed medications. Only visits
// routed to farmacia appear in that queue, so the route is enforced here.
func (u *dispatchUsecase) DispatchPharmacy(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.complete(visitID, entity.NextStepFarmacia)
	if err != nil {
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionPharmacyDispatch, map[string]interface{}{
		"visit_id":   visit.ID.String(),
		"receipt_id": visit.ReceiptID,
	})
	u.log.Infof("Pharmacy dispatched: visit=%s", visit.ID)
	return converter.VisitToResponse(visit), nil
}

// ConfirmLaboratory acknowledges that the ordered exams were taken
func (u *dispatchUsecase) ConfirmLaboratory(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.complete(visitID, entity.NextStepLaboratorio)
	if err != nil {
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionVisitDischarge, map[string]interface{}{
		"visit_id": visit.ID.String(),
		"ward":     string(entity.NextStepLaboratorio),
	})
	return converter.VisitToResponse(visit), nil
}

// Discharge sends the patient out directly when nothing was ordered
func (u *dispatchUsecase) Discharge(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.complete(visitID, entity.NextStepSalida)
	if err != nil {
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionVisitDischarge, map[string]interface{}{
		"visit_id": visit.ID.String(),
	})
	return converter.VisitToResponse(visit), nil
}

func (u *dispatchUsecase) complete(visitID uuid.UUID, ward entity.NextStep) (*entity.PatientVisit, error) {
	visit, err := u.visitRepo.FindByID(visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	if visit.NextStep != ward {
		return nil, ErrWrongWard
	}

	if err := visit.TransitionTo(entity.VisitStatusCompleted); err != nil {
		return nil, err
	}
	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return visit, nil
}
