package usecase

import (
	"context"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// QueueUsecase serves the ward screens: read-only views over the visit
// collection, always in registration order.
type QueueUsecase interface {
	GetVisit(ctx context.Context, visitID uuid.UUID) (*dto.VisitResponse, error)
	ListVisits(ctx context.Context) (*dto.VisitListResponse, error)
	ListByStatus(ctx context.Context, statuses ...entity.VisitStatus) (*dto.VisitListResponse, error)
	TriageQueue(ctx context.Context) (*dto.VisitListResponse, error)
	ConsultationQueue(ctx context.Context) (*dto.VisitListResponse, error)
	PharmacyQueue(ctx context.Context) (*dto.VisitListResponse, error)
	LaboratoryQueue(ctx context.Context) (*dto.VisitListResponse, error)
}

type queueUsecase struct {
	log       *logrus.Logger
	visitRepo repository.VisitRepository
}

func NewQueueUsecase(log *logrus.Logger, visitRepo repository.VisitRepository) QueueUsecase {
	return &queueUsecase{
		log:       log,
		visitRepo: visitRepo,
	}
}

func (u *queueUsecase) GetVisit(ctx context.Context, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	return converter.VisitToResponse(visit), nil
}

func (u *queueUsecase) ListVisits(ctx context.Context) (*dto.VisitListResponse, error) {
	visits, err := u.visitRepo.FindAll()
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
		return nil, err
	}
	return listResponse(visits), nil
}

func (u *queueUsecase) ListByStatus(ctx context.Context, statuses ...entity.VisitStatus) (*dto.VisitListResponse, error) {
	visits, err := u.visitRepo.FindByStatus(statuses...)
	if err != nil {
		u.log.Warnf("Failed to list visits by status: %+v", err)
		return nil, err
	}
	return listResponse(visits), nil
}

// TriageQueue shows patients waiting for or undergoing vitals intake
func (u *queueUsecase) TriageQueue(ctx context.Context) (*dto.VisitListResponse, error) {
	return u.ListByStatus(ctx, entity.VisitStatusRegistered, entity.VisitStatusInTriage)
}

// ConsultationQueue shows triaged patients waiting for the doctor plus
// the one currently inside
func (u *queueUsecase) ConsultationQueue(ctx context.Context) (*dto.VisitListResponse, error) {
	return u.ListByStatus(ctx, entity.VisitStatusTriaged, entity.VisitStatusInConsultation)
}

// PharmacyQueue shows signed visits routed to medication dispatch
func (u *queueUsecase) PharmacyQueue(ctx context.Context) (*dto.VisitListResponse, error) {
	return u.queueByWard(entity.NextStepFarmacia)
}

// LaboratoryQueue shows signed visits routed to sample taking
func (u *queueUsecase) LaboratoryQueue(ctx context.Context) (*dto.VisitListResponse, error) {
	return u.queueByWard(entity.NextStepLaboratorio)
}

func (u *queueUsecase) queueByWard(ward entity.NextStep) (*dto.VisitListResponse, error) {
	visits, err := u.visitRepo.FindByStatus(entity.VisitStatusPostConsultation)
	if err != nil {
		u.log.Warnf("Failed to list visits by status: %+v", err)
		return nil, err
	}

	filtered := make([]entity.PatientVisit, 0, len(visits))
	for _, visit := range visits {
		if visit.NextStep == ward {
			filtered = append(filtered, visit)
		}
	}
	return listResponse(filtered), nil
}

func listResponse(visits []entity.PatientVisit) *dto.VisitListResponse {
	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  len(visits),
	}
}
