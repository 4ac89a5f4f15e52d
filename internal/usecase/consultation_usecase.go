package usecase

import (
	"context"
	"errors"
	"time"

	"medcore-clinic/internal/converter"
	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrVisitNotEditable       = errors.New("visit is not in an editable consultation state")
	ErrVisitAlreadySigned     = errors.New("consultation has already been signed")
	ErrDiagnosisNotFound      = errors.New("diagnosis not found on visit")
	ErrMedicationLineNotFound = errors.New("medication line not found on diagnosis")
	ErrUnknownCIE10Code       = errors.New("unknown CIE-10 code")
	ErrUnknownExam            = errors.New("unknown exam id")
	ErrUnknownMedication      = errors.New("unknown medication id")
)

// ConsultationUsecase drives the doctor's encounter: clinical data entry,
// diagnosis management with per-diagnosis sub-orders, and sign-off.
type ConsultationUsecase interface {
	StartConsultation(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error)
	UpdateClinicalData(ctx context.Context, visitID uuid.UUID, req *dto.UpdateClinicalDataRequest) (*dto.VisitResponse, error)
	AddDiagnosis(ctx context.Context, visitID uuid.UUID, req *dto.AddDiagnosisRequest) (*dto.VisitResponse, error)
	RemoveDiagnosis(ctx context.Context, visitID, diagnosisID uuid.UUID) (*dto.VisitResponse, error)
	SetDiagnosisType(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.SetDiagnosisTypeRequest) (*dto.VisitResponse, error)
	ToggleLabExam(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.ToggleExamRequest) (*dto.VisitResponse, error)
	ToggleImagingExam(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.ToggleExamRequest) (*dto.VisitResponse, error)
	AddMedication(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.AddMedicationRequest) (*dto.VisitResponse, error)
	RemoveMedication(ctx context.Context, visitID, diagnosisID, medicationID uuid.UUID) (*dto.VisitResponse, error)
	PreviewOrders(ctx context.Context, visitID uuid.UUID) (*dto.OrderSetResponse, error)
	SignConsultation(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.SignConsultationResponse, error)
}

type consultationUsecase struct {
	log             *logrus.Logger
	visitRepo       repository.VisitRepository
	catalogRepo     repository.CatalogRepository
	signatureIssuer service.SignatureIssuer
	audit           service.AuditService
}

func NewConsultationUsecase(
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	catalogRepo repository.CatalogRepository,
	signatureIssuer service.SignatureIssuer,
	audit service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		log:             log,
		visitRepo:       visitRepo,
		catalogRepo:     catalogRepo,
		signatureIssuer: signatureIssuer,
		audit:           audit,
	}
}

// StartConsultation is triggered when the doctor opens the visit
func (u *consultationUsecase) StartConsultation(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.findVisit(visitID)
	if err != nil {
		return nil, err
	}

	if err := visit.TransitionTo(entity.VisitStatusInConsultation); err != nil {
		return nil, err
	}
	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionConsultationStart, map[string]interface{}{
		"visit_id": visit.ID.String(),
	})
	return converter.VisitToResponse(visit), nil
}

// UpdateClinicalData applies a partial update of the consultation fields
func (u *consultationUsecase) UpdateClinicalData(ctx context.Context, visitID uuid.UUID, req *dto.UpdateClinicalDataRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	if req.Anamnesis != nil {
		visit.Anamnesis = *req.Anamnesis
	}
	if req.WorkPlan != nil {
		visit.WorkPlan = *req.WorkPlan
	}
	if req.ClinicalExam != nil {
		visit.ClinicalExam = *req.ClinicalExam
	}
	if req.MainSymptom != nil {
		visit.MainSymptom = *req.MainSymptom
	}
	if req.IllnessDuration != nil {
		visit.IllnessDuration = &entity.IllnessDuration{
			Value: req.IllnessDuration.Value,
			Unit:  entity.DurationUnit(req.IllnessDuration.Unit),
		}
	}
	if req.PatientTypeEstab != nil {
		visit.PatientTypeEstab = entity.PatientType(*req.PatientTypeEstab)
	}
	if req.PatientTypeService != nil {
		visit.PatientTypeService = entity.PatientType(*req.PatientTypeService)
	}
	if req.TreatmentObservations != nil {
		visit.TreatmentObservations = *req.TreatmentObservations
	}
	if req.NextControlDate != nil {
		visit.NextControlDate = *req.NextControlDate
	}
	if req.MedicalNotes != nil {
		visit.MedicalNotes = *req.MedicalNotes
	}
	if req.RestCertificate != nil {
		visit.RestCertificate = &entity.RestCertificate{
			Days:      req.RestCertificate.Days,
			StartDate: req.RestCertificate.StartDate,
			Reason:    req.RestCertificate.Reason,
		}
	}

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// AddDiagnosis attaches a catalog-resolved CIE-10 finding to the visit
func (u *consultationUsecase) AddDiagnosis(ctx context.Context, visitID uuid.UUID, req *dto.AddDiagnosisRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	code, err := u.catalogRepo.FindCIE10ByCode(req.CIE10Code)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, ErrUnknownCIE10Code
	}

	diagnosisType := entity.DiagnosisType(req.Type)
	if req.Type == "" {
		diagnosisType = entity.DiagnosisPresuntivo
	}

	visit.Diagnoses = append(visit.Diagnoses, entity.Diagnosis{
		ID:           uuid.New(),
		CIE10Code:    code.Code,
		CIE10Label:   code.Label,
		Type:         diagnosisType,
		LabExams:     []entity.ExamOrder{},
		ImagingExams: []entity.ExamOrder{},
		Medications:  []entity.MedicationOrder{},
	})

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// RemoveDiagnosis drops a diagnosis and everything it owns
func (u *consultationUsecase) RemoveDiagnosis(ctx context.Context, visitID, diagnosisID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	if !visit.RemoveDiagnosis(diagnosisID) {
		return nil, ErrDiagnosisNotFound
	}

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

func (u *consultationUsecase) SetDiagnosisType(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.SetDiagnosisTypeRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	diagnosis := visit.FindDiagnosis(diagnosisID)
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}
	diagnosis.Type = entity.DiagnosisType(req.Type)

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// ToggleLabExam flips a lab exam on the diagnosis. Toggling the same
// exam id twice restores the original order list.
func (u *consultationUsecase) ToggleLabExam(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.ToggleExamRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	diagnosis := visit.FindDiagnosis(diagnosisID)
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	exam, category, err := u.catalogRepo.FindLabExam(req.ExamID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrUnknownExam
	}
	diagnosis.ToggleLabExam(exam.ID, exam.Name, category.Name)

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// ToggleImagingExam flips an imaging exam on the diagnosis
func (u *consultationUsecase) ToggleImagingExam(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.ToggleExamRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	diagnosis := visit.FindDiagnosis(diagnosisID)
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	exam, category, err := u.catalogRepo.FindImagingExam(req.ExamID)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, ErrUnknownExam
	}
	diagnosis.ToggleImagingExam(exam.ID, exam.Name, category.Name)

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// AddMedication appends a prescription line resolved from the catalog.
// The route falls back to the medication's default when not given.
func (u *consultationUsecase) AddMedication(ctx context.Context, visitID, diagnosisID uuid.UUID, req *dto.AddMedicationRequest) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	diagnosis := visit.FindDiagnosis(diagnosisID)
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}

	medication, err := u.catalogRepo.FindMedicationByID(req.MedicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, ErrUnknownMedication
	}

	route := entity.MedicationRoute(req.Route)
	if req.Route == "" {
		route = medication.DefaultRoute
	}

	diagnosis.AddMedication(entity.MedicationOrder{
		ID:             uuid.New(),
		MedicationName: medication.Name,
		Quantity:       req.Quantity,
		Days:           req.Days,
		Route:          route,
		Indication:     req.Indication,
	})

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

func (u *consultationUsecase) RemoveMedication(ctx context.Context, visitID, diagnosisID, medicationID uuid.UUID) (*dto.VisitResponse, error) {
	visit, err := u.findEditableVisit(visitID)
	if err != nil {
		return nil, err
	}

	diagnosis := visit.FindDiagnosis(diagnosisID)
	if diagnosis == nil {
		return nil, ErrDiagnosisNotFound
	}
	if !diagnosis.RemoveMedication(medicationID) {
		return nil, ErrMedicationLineNotFound
	}

	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}
	return converter.VisitToResponse(visit), nil
}

// PreviewOrders shows the dispatch orders the current diagnoses would
// generate, without mutating anything.
func (u *consultationUsecase) PreviewOrders(ctx context.Context, visitID uuid.UUID) (*dto.OrderSetResponse, error) {
	visit, err := u.findVisit(visitID)
	if err != nil {
		return nil, err
	}

	orders := converter.OrderSetToResponse(service.GenerateOrders(visit.Diagnoses))
	return &orders, nil
}

// SignConsultation finishes the encounter: the signature stub is called
// once, dispatch orders are derived from the diagnoses, the next step is
// computed, and the visit advances to post_consultation. After this the
// diagnosis list is frozen.
func (u *consultationUsecase) SignConsultation(ctx context.Context, actorID string, visitID uuid.UUID) (*dto.SignConsultationResponse, error) {
	visit, err := u.findVisit(visitID)
	if err != nil {
		return nil, err
	}
	if visit.IsSigned() {
		return nil, ErrVisitAlreadySigned
	}
	if !visit.CanTransitionTo(entity.VisitStatusPostConsultation) {
		return nil, &entity.InvalidTransitionError{From: visit.Status, To: entity.VisitStatusPostConsultation}
	}

	signature, err := u.signatureIssuer.SignDocument(ctx)
	if err != nil {
		u.log.Warnf("Failed to sign document for visit %s: %+v", visitID, err)
		return nil, err
	}

	orders := service.GenerateOrders(visit.Diagnoses)

	signedAt := signature.Timestamp
	visit.ConsultationSignedAt = &signedAt
	visit.SignatureID = signature.SignatureID
	visit.NextStep = service.DeriveNextStep(visit.Diagnoses)
	visit.Prescription = service.BuildPrescription(visit.Diagnoses)

	if err := visit.TransitionTo(entity.VisitStatusPostConsultation); err != nil {
		return nil, err
	}
	if err := u.visitRepo.Update(visit); err != nil {
		u.log.Warnf("Failed to update visit %s: %+v", visitID, err)
		return nil, err
	}

	u.audit.Record(actorID, entity.AuditActionConsultationSign, map[string]interface{}{
		"visit_id":     visit.ID.String(),
		"signature_id": visit.SignatureID,
		"next_step":    string(visit.NextStep),
	})
	u.log.Infof("Consultation signed: visit=%s, next_step=%s, signature=%s", visit.ID, visit.NextStep, visit.SignatureID)

	return &dto.SignConsultationResponse{
		Visit:     *converter.VisitToResponse(visit),
		Orders:    converter.OrderSetToResponse(orders),
		Signature: signature.SignatureID,
		SignedAt:  signature.Timestamp.Format(time.RFC3339),
	}, nil
}

func (u *consultationUsecase) findVisit(visitID uuid.UUID) (*entity.PatientVisit, error) {
	visit, err := u.visitRepo.FindByID(visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", visitID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	return visit, nil
}

// findEditableVisit guards every mutation of consultation data: the
// visit must be in consultation and unsigned.
func (u *consultationUsecase) findEditableVisit(visitID uuid.UUID) (*entity.PatientVisit, error) {
	visit, err := u.findVisit(visitID)
	if err != nil {
		return nil, err
	}
	if visit.IsSigned() {
		return nil, ErrVisitAlreadySigned
	}
	if !visit.IsEditable() {
		return nil, ErrVisitNotEditable
	}
	return visit, nil
}
