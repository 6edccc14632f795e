package service

import (
	"context"
	"time"

	"autonom-backend/internal/config"
	"autonom-backend/internal/domain"
	"autonom-backend/internal/export"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/report"
	"autonom-backend/internal/repository"
)

type paymentService struct {
	transactionRepo repository.TransactionRepository
	company         export.Company
}

func NewPaymentService(transactionRepo repository.TransactionRepository, company config.CompanyConfig) PaymentService {
	return &paymentService{
		transactionRepo: transactionRepo,
		company: export.Company{
			Name:    company.Name,
			Address: company.Address,
			Phone:   company.Phone,
			Email:   company.Email,
			TaxID:   company.TaxID,
			RegNo:   company.RegNo,
		},
	}
}

func (s *paymentService) Get(ctx context.Context, id int32) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

func (s *paymentService) List(ctx context.Context, query, status string, from, to *time.Time) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	transactions = report.Search(transactions, query, report.TransactionSearchFields)
	transactions = report.ByStatus(transactions, status, func(t domain.Transaction) string { return string(t.Status) })
	transactions = report.ByDateRange(transactions, from, to, func(t domain.Transaction) time.Time { return t.CreatedOn })
	return transactions, nil
}

func (s *paymentService) MarkPaid(ctx context.Context, id int32) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction.Status == domain.TransactionStatusPaid {
		return nil, domain.ErrAlreadyPaid
	}

	if err := s.transactionRepo.UpdateStatus(ctx, id, domain.TransactionStatusPaid); err != nil {
		return nil, err
	}
	transaction.Status = domain.TransactionStatusPaid

	logger.Info("transaction marked paid", "transaction_id", id, "amount_cents", transaction.AmountCents)
	return transaction, nil
}

func (s *paymentService) Invoice(ctx context.Context, id int32) (string, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	invoice := export.BuildInvoice(*transaction, s.company, time.Now())
	return export.RenderInvoiceHTML(invoice)
}
