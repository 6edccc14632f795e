package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"autonom-backend/internal/config"
	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
)

// emailService sends the operational reminder emails to the office inbox
// through SendGrid.
type emailService struct {
	apiKey      string
	fromEmail   string
	fromName    string
	officeEmail string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &emailService{
		apiKey:      cfg.SendGridAPIKey,
		fromEmail:   cfg.FromEmail,
		fromName:    cfg.FromName,
		officeEmail: cfg.OfficeEmail,
	}
}

func (s *emailService) SendExpiringReservationsReminder(ctx context.Context, reservations []domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rezervări care expiră în curând (%d):\n\n", len(reservations))
	for _, r := range reservations {
		name := "client necunoscut"
		vehicle := "vehicul necunoscut"
		if r.Client != nil {
			name = r.Client.FullName
		}
		if r.Vehicle != nil {
			vehicle = strings.TrimSpace(r.Vehicle.Make + " " + r.Vehicle.Model + " (" + r.Vehicle.PlateNumber + ")")
		}
		fmt.Fprintf(&b, "- %s, %s, expiră la %s\n", name, vehicle, r.EndDate.Format("02.01.2006"))
	}

	subject := fmt.Sprintf("Rezervări care expiră: %d", len(reservations))
	return s.send(ctx, subject, b.String())
}

func (s *emailService) SendOverduePaymentsReminder(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Plăți restante (%d):\n\n", len(transactions))
	for _, t := range transactions {
		name := "client necunoscut"
		if t.Reservation != nil && t.Reservation.Client != nil {
			name = t.Reservation.Client.FullName
		}
		fmt.Fprintf(&b, "- %s, %d RON, emisă la %s\n", name, t.AmountWhole(), t.CreatedOn.Format("02.01.2006"))
	}

	subject := fmt.Sprintf("Plăți restante: %d", len(transactions))
	return s.send(ctx, subject, b.String())
}

func (s *emailService) send(ctx context.Context, subject, plainText string) error {
	if s.apiKey == "" || s.officeEmail == "" {
		logger.Warn("email delivery skipped, sendgrid not configured", "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.officeEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
