package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autonom-backend/internal/security"
	"autonom-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth        service.AuthService
	Client      service.ClientService
	Fleet       service.FleetService
	Reservation service.ReservationService
	Payment     service.PaymentService
	Report      service.ReportService
	Alert       service.AlertService
	Document    service.DocumentService
	Export      service.ExportService
}

// NewRouter builds the full API surface. Everything under /api/v1 except
// login and the health check requires a bearer token.
func NewRouter(svc *Services, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(corsMiddleware, loggingMiddleware)

	root.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	api := root.PathPrefix("/api/v1").Subrouter()

	auth := NewAuthHandler(svc.Auth)
	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware(tokens))

	protected.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)

	clients := NewClientHandler(svc.Client)
	protected.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	protected.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id:[0-9]+}", clients.Get).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", clients.Update).Methods(http.MethodPut)

	vehicles := NewVehicleHandler(svc.Fleet)
	protected.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", vehicles.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicles.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicles.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id:[0-9]+}/status", vehicles.SetStatus).Methods(http.MethodPatch)

	reservations := NewReservationHandler(svc.Reservation)
	protected.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	protected.HandleFunc("/reservations", reservations.Book).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id:[0-9]+}", reservations.Get).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id:[0-9]+}/return", reservations.Return).Methods(http.MethodPost)

	transactions := NewTransactionHandler(svc.Payment)
	protected.HandleFunc("/transactions", transactions.List).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/{id:[0-9]+}", transactions.Get).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/{id:[0-9]+}/pay", transactions.MarkPaid).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{id:[0-9]+}/invoice", transactions.Invoice).Methods(http.MethodGet)

	reports := NewReportHandler(svc.Report)
	protected.HandleFunc("/reports/summary", reports.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue-monthly", reports.MonthlyRevenue).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue-yearly", reports.YearlyRevenue).Methods(http.MethodGet)
	protected.HandleFunc("/reports/reservations-monthly", reports.MonthlyReservations).Methods(http.MethodGet)
	protected.HandleFunc("/reports/vehicle-status", reports.VehicleStatusBreakdown).Methods(http.MethodGet)

	alerts := NewAlertHandler(svc.Alert)
	protected.HandleFunc("/alerts", alerts.List).Methods(http.MethodGet)

	exports := NewExportHandler(svc.Export)
	protected.HandleFunc("/exports/{entity}", exports.Download).Methods(http.MethodGet)

	documents := NewDocumentHandler(svc.Document)
	protected.HandleFunc("/documents", documents.List).Methods(http.MethodGet)
	protected.HandleFunc("/documents", documents.Upload).Methods(http.MethodPost)
	protected.HandleFunc("/documents/{id:[0-9]+}", documents.Download).Methods(http.MethodGet)

	return root
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
