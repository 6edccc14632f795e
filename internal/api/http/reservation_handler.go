package http

import (
	"fmt"
	"net/http"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type bookingRequest struct {
	ClientID    int32  `json:"client_id"`
	VehicleID   int32  `json:"vehicle_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	AmountCents int64  `json:"amount_cents"`
	Notes       string `json:"notes"`
}

func (h *ReservationHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid start date", domain.ErrValidation))
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid end date", domain.ErrValidation))
		return
	}

	reservation, err := h.reservations.Book(r.Context(), service.BookingRequest{
		ClientID:    req.ClientID,
		VehicleID:   req.VehicleID,
		StartDate:   start,
		EndDate:     end,
		AmountCents: req.AmountCents,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reservation, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseListFilters(r)
	if err != nil {
		writeError(w, err)
		return
	}
	reservations, err := h.reservations.List(r.Context(), filters.Query, filters.Status, filters.From, filters.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

type returnRequest struct {
	ConditionNotes string `json:"condition_notes"`
	DamageReport   string `json:"damage_report"`
}

func (h *ReservationHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req returnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.reservations.Return(r.Context(), id, req.ConditionNotes, req.DamageReport)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}
