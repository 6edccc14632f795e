package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autonom-backend/internal/config"
	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"
)

type alertService struct {
	reservationRepo repository.ReservationRepository
	transactionRepo repository.TransactionRepository
	expiringWithin  time.Duration
	overdueAfter    time.Duration
	now             func() time.Time
}

func NewAlertService(
	reservationRepo repository.ReservationRepository,
	transactionRepo repository.TransactionRepository,
	cfg config.AlertsConfig,
) AlertService {
	return &alertService{
		reservationRepo: reservationRepo,
		transactionRepo: transactionRepo,
		expiringWithin:  time.Duration(cfg.ExpiringWithinHours) * time.Hour,
		overdueAfter:    time.Duration(cfg.OverdueAfterDays) * 24 * time.Hour,
		now:             time.Now,
	}
}

// ExpiringReservations returns active reservations ending within the
// configured window, including ones already past their end date.
func (s *alertService) ExpiringReservations(ctx context.Context) ([]domain.Reservation, error) {
	cutoff := s.now().Add(s.expiringWithin)
	return s.reservationRepo.ListExpiring(ctx, cutoff)
}

// OverduePayments returns unpaid transactions older than the configured
// grace period.
func (s *alertService) OverduePayments(ctx context.Context) ([]domain.Transaction, error) {
	cutoff := s.now().Add(-s.overdueAfter)
	return s.transactionRepo.ListOverdue(ctx, cutoff)
}

func (s *alertService) Check(ctx context.Context) ([]domain.Alert, error) {
	expiring, err := s.ExpiringReservations(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := s.OverduePayments(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	alerts := make([]domain.Alert, 0, len(expiring)+len(overdue))
	for _, r := range expiring {
		alerts = append(alerts, domain.Alert{
			ID:        fmt.Sprintf("expiring-%d", r.ID),
			Type:      domain.AlertTypeReservationExpiring,
			Title:     "Rezervare care expiră",
			Message:   expiringMessage(r),
			CreatedOn: now,
		})
	}
	for _, t := range overdue {
		alerts = append(alerts, domain.Alert{
			ID:        fmt.Sprintf("overdue-%d", t.ID),
			Type:      domain.AlertTypePaymentOverdue,
			Title:     "Plată restantă",
			Message:   overdueMessage(t),
			CreatedOn: now,
		})
	}
	return alerts, nil
}

func expiringMessage(r domain.Reservation) string {
	name := "Client"
	vehicle := "vehiculul"
	if r.Client != nil {
		name = r.Client.FullName
	}
	if r.Vehicle != nil {
		vehicle = strings.TrimSpace(r.Vehicle.Make + " " + r.Vehicle.Model)
	}
	return fmt.Sprintf("Rezervarea lui %s pentru %s expiră la %s", name, vehicle, r.EndDate.Format("02.01.2006"))
}

func overdueMessage(t domain.Transaction) string {
	name := "Client"
	if t.Reservation != nil && t.Reservation.Client != nil {
		name = t.Reservation.Client.FullName
	}
	return fmt.Sprintf("%s are o plată restantă de %d RON din %s", name, t.AmountWhole(), t.CreatedOn.Format("02.01.2006"))
}
