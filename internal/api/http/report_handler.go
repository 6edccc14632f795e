package http

import (
	"context"
	"net/http"

	"autonom-backend/internal/report"
	"autonom-backend/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	writeSeries(w, r, h.reports.MonthlyRevenue)
}

func (h *ReportHandler) YearlyRevenue(w http.ResponseWriter, r *http.Request) {
	writeSeries(w, r, h.reports.YearlyRevenue)
}

func (h *ReportHandler) MonthlyReservations(w http.ResponseWriter, r *http.Request) {
	writeSeries(w, r, h.reports.MonthlyReservations)
}

func writeSeries(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]report.Bucket, error)) {
	buckets, err := fetch(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if buckets == nil {
		buckets = []report.Bucket{}
	}
	writeJSON(w, http.StatusOK, buckets)
}

func (h *ReportHandler) VehicleStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.reports.VehicleStatusBreakdown(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}
