package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"medcore-clinic/internal/delivery/dto"
	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	repoImpl "medcore-clinic/internal/repository"
	"medcore-clinic/internal/seed"
	"medcore-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type testEnv struct {
	visitRepo    repository.VisitRepository
	auditRepo    repository.AuditLogRepository
	admission    AdmissionUsecase
	triage       TriageUsecase
	consultation ConsultationUsecase
	dispatch     DispatchUsecase
	queue        QueueUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	visitRepo := repoImpl.NewVisitRepository()
	auditRepo := repoImpl.NewAuditLogRepository()
	catalogRepo := repoImpl.NewCatalogRepository(
		seed.CIE10Catalog(),
		seed.LabExamCatalog(),
		seed.ImagingExamCatalog(),
		seed.MedicationCatalog(),
	)
	audit := service.NewAuditService(log, auditRepo)

	return &testEnv{
		visitRepo:    visitRepo,
		auditRepo:    auditRepo,
		admission:    NewAdmissionUsecase(log, visitRepo, service.NewReceiptIssuer(0), audit),
		triage:       NewTriageUsecase(log, visitRepo, audit),
		consultation: NewConsultationUsecase(log, visitRepo, catalogRepo, service.NewSignatureIssuer(0), audit),
		dispatch:     NewDispatchUsecase(log, visitRepo, audit),
		queue:        NewQueueUsecase(log, visitRepo),
	}
}

// admitTriaged walks a fresh visit up to the triaged state
func (e *testEnv) admitTriaged(t *testing.T, ctx context.Context) uuid.UUID {
	t.Helper()

	visit, err := e.admission.RegisterVisit(ctx, "user-recepcion", &dto.RegisterVisitRequest{
		Name:   "Carmen Delgado",
		Age:    52,
		Gender: "Female",
	})
	if err != nil {
		t.Fatalf("RegisterVisit: %v", err)
	}

	if _, err := e.triage.StartTriage(ctx, "user-triaje", visit.ID); err != nil {
		t.Fatalf("StartTriage: %v", err)
	}
	if _, err := e.triage.CompleteTriage(ctx, "user-triaje", visit.ID, &dto.CompleteTriageRequest{
		Vitals: dto.VitalsRequest{
			Weight:        "70",
			Height:        "165",
			Temperature:   "36.5",
			BloodPressure: "120/80",
		},
		Observations: "Paciente estable",
	}); err != nil {
		t.Fatalf("CompleteTriage: %v", err)
	}
	return visit.ID
}

func TestRegisterVisitDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	visit, err := env.admission.RegisterVisit(ctx, "user-recepcion", &dto.RegisterVisitRequest{
		Name:   "Pedro Castillo Vargas",
		Age:    34,
		Gender: "Male",
		Phone:  "+1 (555) 999-0000",
	})
	if err != nil {
		t.Fatalf("RegisterVisit: %v", err)
	}

	if visit.Status != string(entity.VisitStatusRegistered) {
		t.Errorf("status = %s, want registered", visit.Status)
	}
	if visit.Priority != string(entity.PriorityMedium) {
		t.Errorf("priority = %s, want medium", visit.Priority)
	}
	if !strings.HasPrefix(visit.PatientID, "#MC-") {
		t.Errorf("patient id = %s, want #MC- prefix", visit.PatientID)
	}
	if !strings.HasPrefix(visit.ReceiptID, "REC-") {
		t.Errorf("receipt id = %s, want REC- prefix", visit.ReceiptID)
	}
	if !strings.HasPrefix(visit.AccountNumber, "CTA-") {
		t.Errorf("account number = %s, want CTA- prefix", visit.AccountNumber)
	}
	if visit.Initials != "PC" {
		t.Errorf("initials = %s, want PC", visit.Initials)
	}
	if visit.Allergies != "NIEGA RAM" {
		t.Errorf("allergies = %s, want NIEGA RAM", visit.Allergies)
	}
	if visit.ServiceType != "Medicina General" {
		t.Errorf("service type = %s, want Medicina General", visit.ServiceType)
	}
}

func TestFullClinicalWorkflowToPharmacy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	if _, err := env.consultation.StartConsultation(ctx, "user-doctor", visitID); err != nil {
		t.Fatalf("StartConsultation: %v", err)
	}

	visit, err := env.consultation.AddDiagnosis(ctx, visitID, &dto.AddDiagnosisRequest{CIE10Code: "I10"})
	if err != nil {
		t.Fatalf("AddDiagnosis: %v", err)
	}
	if len(visit.Diagnoses) != 1 {
		t.Fatalf("expected 1 diagnosis, got %d", len(visit.Diagnoses))
	}
	diagnosis := visit.Diagnoses[0]
	if diagnosis.Type != string(entity.DiagnosisPresuntivo) {
		t.Errorf("default diagnosis type = %s, want presuntivo", diagnosis.Type)
	}
	if diagnosis.CIE10Label != "Hipertension esencial (primaria)" {
		t.Errorf("label not resolved from catalog: %s", diagnosis.CIE10Label)
	}

	if _, err := env.consultation.SetDiagnosisType(ctx, visitID, diagnosis.ID, &dto.SetDiagnosisTypeRequest{
		Type: string(entity.DiagnosisDefinitivo),
	}); err != nil {
		t.Fatalf("SetDiagnosisType: %v", err)
	}

	visit, err = env.consultation.AddMedication(ctx, visitID, diagnosis.ID, &dto.AddMedicationRequest{
		MedicationID: "med-06",
		Quantity:     30,
		Days:         30,
		Indication:   "1 tableta cada 24 horas",
	})
	if err != nil {
		t.Fatalf("AddMedication: %v", err)
	}
	if visit.Diagnoses[0].Medications[0].Route != string(entity.RouteOral) {
		t.Errorf("route should default from catalog, got %s", visit.Diagnoses[0].Medications[0].Route)
	}

	result, err := env.consultation.SignConsultation(ctx, "user-doctor", visitID)
	if err != nil {
		t.Fatalf("SignConsultation: %v", err)
	}
	if result.Visit.Status != string(entity.VisitStatusPostConsultation) {
		t.Errorf("status after sign = %s, want post_consultation", result.Visit.Status)
	}
	if result.Visit.NextStep != string(entity.NextStepFarmacia) {
		t.Errorf("next step = %s, want farmacia", result.Visit.NextStep)
	}
	if !strings.HasPrefix(result.Signature, "RENIEC-SIG-") {
		t.Errorf("signature = %s, want RENIEC-SIG- prefix", result.Signature)
	}
	if len(result.Orders.PharmacyOrders) != 1 {
		t.Fatalf("expected 1 pharmacy order, got %d", len(result.Orders.PharmacyOrders))
	}
	if !strings.Contains(result.Visit.Prescription, "Losartan 50mg - 30 x 30 days (oral)") {
		t.Errorf("unexpected prescription: %s", result.Visit.Prescription)
	}

	// the visit must now appear in the pharmacy queue
	pharmacyQueue, err := env.queue.PharmacyQueue(ctx)
	if err != nil {
		t.Fatalf("PharmacyQueue: %v", err)
	}
	if pharmacyQueue.Total != 1 || pharmacyQueue.Visits[0].ID != visitID {
		t.Fatalf("pharmacy queue: %+v", pharmacyQueue)
	}

	dispatched, err := env.dispatch.DispatchPharmacy(ctx, "user-farmacia", visitID)
	if err != nil {
		t.Fatalf("DispatchPharmacy: %v", err)
	}
	if dispatched.Status != string(entity.VisitStatusCompleted) {
		t.Errorf("status after dispatch = %s, want completed", dispatched.Status)
	}
}

func TestSignWithoutDiagnosesRoutesToExit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	if _, err := env.consultation.StartConsultation(ctx, "user-doctor", visitID); err != nil {
		t.Fatalf("StartConsultation: %v", err)
	}

	result, err := env.consultation.SignConsultation(ctx, "user-doctor", visitID)
	if err != nil {
		t.Fatalf("SignConsultation: %v", err)
	}
	if result.Visit.NextStep != string(entity.NextStepSalida) {
		t.Errorf("next step = %s, want salida", result.Visit.NextStep)
	}
	if result.Visit.Prescription != "" {
		t.Errorf("expected empty prescription, got %q", result.Visit.Prescription)
	}

	// pharmacy must refuse a visit routed to the exit
	if _, err := env.dispatch.DispatchPharmacy(ctx, "user-farmacia", visitID); !errors.Is(err, ErrWrongWard) {
		t.Fatalf("expected ErrWrongWard, got %v", err)
	}

	discharged, err := env.dispatch.Discharge(ctx, "user-recepcion", visitID)
	if err != nil {
		t.Fatalf("Discharge: %v", err)
	}
	if discharged.Status != string(entity.VisitStatusCompleted) {
		t.Errorf("status = %s, want completed", discharged.Status)
	}
}

func TestExamOnlySignRoutesToLaboratory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	env.consultation.StartConsultation(ctx, "user-doctor", visitID)
	visit, err := env.consultation.AddDiagnosis(ctx, visitID, &dto.AddDiagnosisRequest{CIE10Code: "R51"})
	if err != nil {
		t.Fatalf("AddDiagnosis: %v", err)
	}
	diagnosisID := visit.Diagnoses[0].ID

	if _, err := env.consultation.ToggleLabExam(ctx, visitID, diagnosisID, &dto.ToggleExamRequest{ExamID: "hem-01"}); err != nil {
		t.Fatalf("ToggleLabExam: %v", err)
	}

	result, err := env.consultation.SignConsultation(ctx, "user-doctor", visitID)
	if err != nil {
		t.Fatalf("SignConsultation: %v", err)
	}
	if result.Visit.NextStep != string(entity.NextStepLaboratorio) {
		t.Errorf("next step = %s, want laboratorio", result.Visit.NextStep)
	}
	if len(result.Orders.LabOrders) != 1 {
		t.Fatalf("expected 1 lab order, got %d", len(result.Orders.LabOrders))
	}

	if _, err := env.dispatch.ConfirmLaboratory(ctx, "user-farmacia", visitID); err != nil {
		t.Fatalf("ConfirmLaboratory: %v", err)
	}
}

func TestToggleExamIsIdempotentPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	env.consultation.StartConsultation(ctx, "user-doctor", visitID)
	visit, _ := env.consultation.AddDiagnosis(ctx, visitID, &dto.AddDiagnosisRequest{CIE10Code: "J06.9"})
	diagnosisID := visit.Diagnoses[0].ID

	visit, err := env.consultation.ToggleLabExam(ctx, visitID, diagnosisID, &dto.ToggleExamRequest{ExamID: "hem-01"})
	if err != nil {
		t.Fatalf("ToggleLabExam: %v", err)
	}
	if len(visit.Diagnoses[0].LabExams) != 1 {
		t.Fatalf("expected 1 lab exam, got %d", len(visit.Diagnoses[0].LabExams))
	}

	visit, err = env.consultation.ToggleLabExam(ctx, visitID, diagnosisID, &dto.ToggleExamRequest{ExamID: "hem-01"})
	if err != nil {
		t.Fatalf("second ToggleLabExam: %v", err)
	}
	if len(visit.Diagnoses[0].LabExams) != 0 {
		t.Errorf("expected toggle pair to remove the exam, got %d", len(visit.Diagnoses[0].LabExams))
	}
}

func TestConsultationFrozenAfterSign(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	env.consultation.StartConsultation(ctx, "user-doctor", visitID)
	if _, err := env.consultation.SignConsultation(ctx, "user-doctor", visitID); err != nil {
		t.Fatalf("SignConsultation: %v", err)
	}

	if _, err := env.consultation.AddDiagnosis(ctx, visitID, &dto.AddDiagnosisRequest{CIE10Code: "I10"}); !errors.Is(err, ErrVisitAlreadySigned) {
		t.Errorf("AddDiagnosis after sign: expected ErrVisitAlreadySigned, got %v", err)
	}
	if _, err := env.consultation.SignConsultation(ctx, "user-doctor", visitID); !errors.Is(err, ErrVisitAlreadySigned) {
		t.Errorf("double sign: expected ErrVisitAlreadySigned, got %v", err)
	}
}

func TestWorkflowGuardsRejectSkips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	visit, err := env.admission.RegisterVisit(ctx, "user-recepcion", &dto.RegisterVisitRequest{
		Name: "Raul Ortiz", Age: 40, Gender: "Male",
	})
	if err != nil {
		t.Fatalf("RegisterVisit: %v", err)
	}

	// consultation cannot start before triage finished
	var transitionErr *entity.InvalidTransitionError
	if _, err := env.consultation.StartConsultation(ctx, "user-doctor", visit.ID); !errors.As(err, &transitionErr) {
		t.Errorf("expected InvalidTransitionError, got %v", err)
	}

	// triage cannot complete before it started
	if _, err := env.triage.CompleteTriage(ctx, "user-triaje", visit.ID, &dto.CompleteTriageRequest{
		Vitals:       dto.VitalsRequest{Weight: "70", Height: "165", Temperature: "36.5", BloodPressure: "120/80"},
		Observations: "n/a",
	}); !errors.As(err, &transitionErr) {
		t.Errorf("expected InvalidTransitionError, got %v", err)
	}
}

func TestAddDiagnosisUnknownCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	env.consultation.StartConsultation(ctx, "user-doctor", visitID)
	if _, err := env.consultation.AddDiagnosis(ctx, visitID, &dto.AddDiagnosisRequest{CIE10Code: "X99"}); !errors.Is(err, ErrUnknownCIE10Code) {
		t.Errorf("expected ErrUnknownCIE10Code, got %v", err)
	}
	if _, err := env.consultation.StartConsultation(ctx, "user-doctor", uuid.New()); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestSeededQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	visits := seed.Visits()
	for i := range visits {
		if err := env.visitRepo.Create(&visits[i]); err != nil {
			t.Fatalf("seed visit: %v", err)
		}
	}

	all, err := env.queue.ListVisits(ctx)
	if err != nil {
		t.Fatalf("ListVisits: %v", err)
	}
	if all.Total != 8 {
		t.Fatalf("expected 8 seeded visits, got %d", all.Total)
	}

	triageQueue, _ := env.queue.TriageQueue(ctx)
	if triageQueue.Total != 3 {
		t.Errorf("triage queue = %d, want 3", triageQueue.Total)
	}
	consultationQueue, _ := env.queue.ConsultationQueue(ctx)
	if consultationQueue.Total != 3 {
		t.Errorf("consultation queue = %d, want 3", consultationQueue.Total)
	}
	pharmacyQueue, _ := env.queue.PharmacyQueue(ctx)
	if pharmacyQueue.Total != 1 {
		t.Errorf("pharmacy queue = %d, want 1", pharmacyQueue.Total)
	}
	laboratoryQueue, _ := env.queue.LaboratoryQueue(ctx)
	if laboratoryQueue.Total != 1 {
		t.Errorf("laboratory queue = %d, want 1", laboratoryQueue.Total)
	}
}

func TestAuditTrailRecordsWorkflow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	visitID := env.admitTriaged(t, ctx)

	env.consultation.StartConsultation(ctx, "user-doctor", visitID)
	env.consultation.SignConsultation(ctx, "user-doctor", visitID)

	logs, err := env.auditRepo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	wantActions := []string{
		entity.AuditActionVisitRegister,
		entity.AuditActionTriageStart,
		entity.AuditActionTriageComplete,
		entity.AuditActionConsultationStart,
		entity.AuditActionConsultationSign,
	}
	if len(logs) != len(wantActions) {
		t.Fatalf("expected %d audit entries, got %d", len(wantActions), len(logs))
	}
	for i, action := range wantActions {
		if logs[i].Action != action {
			t.Errorf("logs[%d].Action = %s, want %s", i, logs[i].Action, action)
		}
	}

	signs, err := env.auditRepo.FindByAction(entity.AuditActionConsultationSign)
	if err != nil {
		t.Fatalf("FindByAction: %v", err)
	}
	if len(signs) != 1 || signs[0].UserID != "user-doctor" {
		t.Errorf("sign entry: %+v", signs)
	}
}
