package http

import (
	"net/http"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type TransactionHandler struct {
	payments service.PaymentService
}

func NewTransactionHandler(payments service.PaymentService) *TransactionHandler {
	return &TransactionHandler{payments: payments}
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	transaction, err := h.payments.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseListFilters(r)
	if err != nil {
		writeError(w, err)
		return
	}
	transactions, err := h.payments.List(r.Context(), filters.Query, filters.Status, filters.From, filters.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	transaction, err := h.payments.MarkPaid(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

// Invoice returns the printable invoice page. The operator prints it to
// PDF from the browser.
func (h *TransactionHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := h.payments.Invoice(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}
