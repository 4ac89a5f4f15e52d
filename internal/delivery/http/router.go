package http

import (
	"net/http"

	"medcore-clinic/internal/delivery/http/handler"
	"medcore-clinic/internal/delivery/http/middleware"
	"medcore-clinic/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	admissionHandler    *handler.AdmissionHandler
	triageHandler       *handler.TriageHandler
	consultationHandler *handler.ConsultationHandler
	dispatchHandler     *handler.DispatchHandler
	visitHandler        *handler.VisitHandler
	appointmentHandler  *handler.AppointmentHandler
	catalogHandler      *handler.CatalogHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	admissionHandler *handler.AdmissionHandler,
	triageHandler *handler.TriageHandler,
	consultationHandler *handler.ConsultationHandler,
	dispatchHandler *handler.DispatchHandler,
	visitHandler *handler.VisitHandler,
	appointmentHandler *handler.AppointmentHandler,
	catalogHandler *handler.CatalogHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		admissionHandler:    admissionHandler,
		triageHandler:       triageHandler,
		consultationHandler: consultationHandler,
		dispatchHandler:     dispatchHandler,
		visitHandler:        visitHandler,
		appointmentHandler:  appointmentHandler,
		catalogHandler:      catalogHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public). The user list feeds the role selection screen.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/users", r.authHandler.ListUsers).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Visit reads and catalogs (any authenticated ward)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/visits", r.visitHandler.ListVisits).Methods(http.MethodGet)
	protected.HandleFunc("/visits/{id}", r.visitHandler.GetVisit).Methods(http.MethodGet)
	protected.HandleFunc("/queues/triage", r.visitHandler.TriageQueue).Methods(http.MethodGet)
	protected.HandleFunc("/queues/consultation", r.visitHandler.ConsultationQueue).Methods(http.MethodGet)
	protected.HandleFunc("/queues/pharmacy", r.visitHandler.PharmacyQueue).Methods(http.MethodGet)
	protected.HandleFunc("/queues/laboratory", r.visitHandler.LaboratoryQueue).Methods(http.MethodGet)
	protected.HandleFunc("/catalogs/cie10", r.catalogHandler.SearchCIE10).Methods(http.MethodGet)
	protected.HandleFunc("/catalogs/lab-exams", r.catalogHandler.LabExamCategories).Methods(http.MethodGet)
	protected.HandleFunc("/catalogs/imaging-exams", r.catalogHandler.ImagingExamCategories).Methods(http.MethodGet)
	protected.HandleFunc("/catalogs/medications", r.catalogHandler.ListMedications).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs", r.auditLogHandler.ListLogs).Methods(http.MethodGet)

	// Reception: admission and the appointment book
	reception := api.PathPrefix("").Subrouter()
	reception.Use(r.authMiddleware.Authenticate)
	reception.Use(middleware.RequireRecepcion)
	reception.HandleFunc("/visits", r.admissionHandler.RegisterVisit).Methods(http.MethodPost)
	reception.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	reception.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	reception.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Appointment reads are open to any ward
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	// Triage ward
	triage := api.PathPrefix("/visits").Subrouter()
	triage.Use(r.authMiddleware.Authenticate)
	triage.Use(middleware.RequireTriaje)
	triage.HandleFunc("/{id}/triage/start", r.triageHandler.StartTriage).Methods(http.MethodPost)
	triage.HandleFunc("/{id}/triage/complete", r.triageHandler.CompleteTriage).Methods(http.MethodPost)

	// Consultation ward
	doctor := api.PathPrefix("/visits").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/{id}/consultation/start", r.consultationHandler.StartConsultation).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/consultation", r.consultationHandler.UpdateClinicalData).Methods(http.MethodPatch)
	doctor.HandleFunc("/{id}/consultation/sign", r.consultationHandler.SignConsultation).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/orders", r.consultationHandler.PreviewOrders).Methods(http.MethodGet)
	doctor.HandleFunc("/{id}/diagnoses", r.consultationHandler.AddDiagnosis).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}", r.consultationHandler.RemoveDiagnosis).Methods(http.MethodDelete)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}/type", r.consultationHandler.SetDiagnosisType).Methods(http.MethodPut)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}/lab-exams", r.consultationHandler.ToggleLabExam).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}/imaging-exams", r.consultationHandler.ToggleImagingExam).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}/medications", r.consultationHandler.AddMedication).Methods(http.MethodPost)
	doctor.HandleFunc("/{id}/diagnoses/{diagnosisId}/medications/{medicationId}", r.consultationHandler.RemoveMedication).Methods(http.MethodDelete)

	// Pharmacy ward
	pharmacy := api.PathPrefix("/visits").Subrouter()
	pharmacy.Use(r.authMiddleware.Authenticate)
	pharmacy.Use(middleware.RequireFarmacia)
	pharmacy.HandleFunc("/{id}/dispatch", r.dispatchHandler.DispatchPharmacy).Methods(http.MethodPost)

	// Laboratory confirmation and plain discharge are shared between
	// reception and pharmacy staff
	egress := api.PathPrefix("/visits").Subrouter()
	egress.Use(r.authMiddleware.Authenticate)
	egress.Use(middleware.RequireRole(entity.RoleRecepcion, entity.RoleFarmacia))
	egress.HandleFunc("/{id}/laboratory/confirm", r.dispatchHandler.ConfirmLaboratory).Methods(http.MethodPost)
	egress.HandleFunc("/{id}/discharge", r.dispatchHandler.Discharge).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
