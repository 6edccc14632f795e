package service

import (
	"context"
	"io"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/report"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error)
	Register(ctx context.Context, username, password, fullName string) (*domain.StaffUser, error)
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, id int32) (*domain.Client, error)
	// List applies the case-insensitive search query over the designated
	// client fields. A blank query returns everyone.
	List(ctx context.Context, query string) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

type FleetService interface {
	Add(ctx context.Context, v *domain.Vehicle) error
	Get(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context, query, status string) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	SetStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
}

// BookingRequest carries everything needed to open a reservation with its
// payment record in one operation.
type BookingRequest struct {
	ClientID    int32
	VehicleID   int32
	StartDate   time.Time
	EndDate     time.Time
	AmountCents int64
	Notes       string
}

type ReservationService interface {
	// Book runs the multi-step booking workflow. On a mid-workflow
	// failure the earlier steps are compensated and the error names the
	// step that failed.
	Book(ctx context.Context, req BookingRequest) (*domain.Reservation, error)
	Get(ctx context.Context, id int32) (*domain.Reservation, error)
	List(ctx context.Context, query, status string, from, to *time.Time) ([]domain.Reservation, error)
	// Return completes an active reservation and releases its vehicle.
	Return(ctx context.Context, id int32, conditionNotes, damageReport string) (*domain.Reservation, error)
}

type PaymentService interface {
	Get(ctx context.Context, id int32) (*domain.Transaction, error)
	List(ctx context.Context, query, status string, from, to *time.Time) ([]domain.Transaction, error)
	// MarkPaid transitions an unpaid transaction to paid. Paid
	// transactions are final.
	MarkPaid(ctx context.Context, id int32) (*domain.Transaction, error)
	// Invoice renders the printable invoice page for a transaction.
	Invoice(ctx context.Context, id int32) (string, error)
}

// DashboardStats is the headline figures block of the reports page.
// Revenue amounts are in cents; OccupancyRate is rented over total fleet.
type DashboardStats struct {
	TotalClients        int32   `json:"total_clients"`
	TotalVehicles       int32   `json:"total_vehicles"`
	AvailableVehicles   int32   `json:"available_vehicles"`
	RentedVehicles      int32   `json:"rented_vehicles"`
	MaintenanceVehicles int32   `json:"maintenance_vehicles"`
	ActiveReservations  int32   `json:"active_reservations"`
	TotalRevenue        int64   `json:"total_revenue"`
	MonthRevenue        int64   `json:"month_revenue"`
	UnpaidAmount        int64   `json:"unpaid_amount"`
	OccupancyRate       float64 `json:"occupancy_rate"`
}

// VehicleStatusCount is one slice of the fleet status breakdown.
type VehicleStatusCount struct {
	Status domain.VehicleStatus `json:"status"`
	Count  int32                `json:"count"`
}

type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	MonthlyRevenue(ctx context.Context) ([]report.Bucket, error)
	MonthlyReservations(ctx context.Context) ([]report.Bucket, error)
	YearlyRevenue(ctx context.Context) ([]report.Bucket, error)
	VehicleStatusBreakdown(ctx context.Context) ([]VehicleStatusCount, error)
}

type AlertService interface {
	// Check recomputes the current operator alerts from live data.
	Check(ctx context.Context) ([]domain.Alert, error)
	ExpiringReservations(ctx context.Context) ([]domain.Reservation, error)
	OverduePayments(ctx context.Context) ([]domain.Transaction, error)
}

type EmailService interface {
	SendExpiringReservationsReminder(ctx context.Context, reservations []domain.Reservation) error
	SendOverduePaymentsReminder(ctx context.Context, transactions []domain.Transaction) error
}

// UploadRequest describes an incoming document.
type UploadRequest struct {
	FileName      string
	MimeType      string
	Size          int64
	Kind          domain.DocumentKind
	ReservationID *int32
	Content       io.Reader
}

type DocumentService interface {
	Upload(ctx context.Context, req UploadRequest) (*domain.Document, error)
	Download(ctx context.Context, id int32) (*domain.Document, io.ReadCloser, error)
	List(ctx context.Context) ([]domain.Document, error)
}

type ExportService interface {
	Clients(ctx context.Context) (string, error)
	Vehicles(ctx context.Context) (string, error)
	Reservations(ctx context.Context) (string, error)
	Transactions(ctx context.Context) (string, error)
}
