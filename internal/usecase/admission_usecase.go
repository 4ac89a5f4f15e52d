package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrVisitNotFound = errors.New("visit not found")

// AdmissionUsecase registers arriving patients into the visit queue
type AdmissionUsecase interface {
	RegisterVisit(ctx context.Context, actorID string, req *dto.RegisterVisitRequest) (*dto.VisitResponse, error)
}

type admissionUsecase struct {
	log           *logrus.Logger
	visitRepo     repository.VisitRepository
	receiptIssuer service.ReceiptIssuer
	audit         service.AuditService
}

func NewAdmissionUsecase(
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	receiptIssuer service.ReceiptIssuer,
	audit service.AuditService,
) AdmissionUsecase {
	return &admissionUsecase{
		log:           log,
		visitRepo:     visitRepo,
		receiptIssuer: receiptIssuer,
		audit:         audit,
	}
}

// RegisterVisit creates a visit in the registered state. The receipt
// stub is called once; its identifiers are stamped on the aggregate.
func (u *admissionUsecase) RegisterVisit(ctx context.Context, actorID string, req *dto.RegisterVisitRequest) (*dto.VisitResponse, error) {
	receipt, err := u.receiptIssuer.GenerateReceipt(ctx)
	if err != nil {
		u.log.Warnf("Failed to generate receipt: %+v", err)
		return nil, err
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "Medicina General"
	}

	visit := &entity.PatientVisit{
		ID:              uuid.New(),
		PatientID:       generatePatientID(),
		Name:            req.Name,
		Initials:        nameInitials(req.Name),
		Age:             req.Age,
		Gender:          req.Gender,
		Phone:           req.Phone,
		Status:          entity.VisitStatusRegistered,
		Priority:        entity.PriorityMedium,
		RegisteredAt:    time.Now(),
		AppointmentID:   req.AppointmentID,
		ServiceType:     serviceType,
		ReceiptID:       receipt.ReceiptID,
		AccountNumber:   receipt.AccountNumber,
		MedicalHistory:  []entity.HistoryItem{},
		SurgicalHistory: []entity.HistoryItem{},
		Allergies:       "NIEGA RAM",
	}

	if err := u.visitRepo.Create(visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionVisitRegister, map[string]interface{}{
		"visit_id":   visit.ID.String(),
		"patient_id": visit.PatientID,
		"receipt_id": visit.ReceiptID,
	})
	u.log.Infof("Visit registered: id=%s, patient=%s, receipt=%s", visit.ID, visit.PatientID, visit.ReceiptID)

	return converter.VisitToResponse(visit), nil
}

// generatePatientID produces the display code shown on ward screens:
// #MC-YYYY-XXXX
func generatePatientID() string {
	return fmt.Sprintf("#MC-%d-%04d", time.Now().Year(), rand.Intn(9000)+1000)
}

// nameInitials derives the two-letter banner initials from the name
func nameInitials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
