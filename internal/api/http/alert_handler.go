package http

import (
	"net/http"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type AlertHandler struct {
	alerts service.AlertService
}

func NewAlertHandler(alerts service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// List recomputes the current alerts. The front office polls this
// endpoint periodically.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.Check(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
