package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"autonom-backend/internal/service"
)

type ExportHandler struct {
	exports service.ExportService
}

func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download streams the requested entity export as a CSV attachment.
// An empty data set yields 409 so the front office shows a notice
// instead of saving an empty file.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	entity := mux.Vars(r)["entity"]

	var fetch func(context.Context) (string, error)
	switch entity {
	case "clients":
		fetch = h.exports.Clients
	case "vehicles":
		fetch = h.exports.Vehicles
	case "reservations":
		fetch = h.exports.Reservations
	case "transactions":
		fetch = h.exports.Transactions
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("unknown export entity %q", entity)})
		return
	}

	content, err := fetch(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	fileName := fmt.Sprintf("%s_%s.csv", entity, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
