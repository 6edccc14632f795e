package jobs

import (
	"context"
	"time"

	"autonom-backend/internal/logger"
)

const jobTimeout = 2 * time.Minute

// CheckExpiringReservations emails the office a reminder listing active
// reservations about to end.
func (jr *JobRunner) CheckExpiringReservations() {
	jr.runWithRecovery("CheckExpiringReservations", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		reservations, err := jr.services.Alert.ExpiringReservations(ctx)
		if err != nil {
			logger.Error("Failed to list expiring reservations", "error", err)
			return
		}
		if len(reservations) == 0 {
			logger.Debug("No expiring reservations found")
			return
		}

		if err := jr.services.Email.SendExpiringReservationsReminder(ctx, reservations); err != nil {
			logger.Error("Failed to send expiring reservations reminder", "error", err)
			return
		}
		logger.Info("Expiring reservations reminder sent", "count", len(reservations))
	})
}

// CheckOverduePayments emails the office a reminder listing unpaid
// transactions past the grace period.
func (jr *JobRunner) CheckOverduePayments() {
	jr.runWithRecovery("CheckOverduePayments", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		transactions, err := jr.services.Alert.OverduePayments(ctx)
		if err != nil {
			logger.Error("Failed to list overdue payments", "error", err)
			return
		}
		if len(transactions) == 0 {
			logger.Debug("No overdue payments found")
			return
		}

		if err := jr.services.Email.SendOverduePaymentsReminder(ctx, transactions); err != nil {
			logger.Error("Failed to send overdue payments reminder", "error", err)
			return
		}
		logger.Info("Overdue payments reminder sent", "count", len(transactions))
	})
}
