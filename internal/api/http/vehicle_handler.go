package http

import (
	"net/http"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type VehicleHandler struct {
	fleet service.FleetService
}

func NewVehicleHandler(fleet service.FleetService) *VehicleHandler {
	return &VehicleHandler{fleet: fleet}
}

type vehicleRequest struct {
	Make        string     `json:"make"`
	Model       string     `json:"model"`
	PlateNumber string     `json:"plate_number"`
	Status      string     `json:"status"`
	MileageKM   int32      `json:"mileage_km"`
	Notes       string     `json:"notes"`
	LastService *time.Time `json:"last_service_on"`
}

func (req vehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		Make:        req.Make,
		Model:       req.Model,
		PlateNumber: req.PlateNumber,
		Status:      domain.VehicleStatus(req.Status),
		MileageKM:   req.MileageKM,
		Notes:       req.Notes,
		LastService: req.LastService,
	}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vehicle := req.toDomain()
	if err := h.fleet.Add(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.fleet.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vehicles, err := h.fleet.List(r.Context(), q.Get("q"), q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req vehicleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vehicle := req.toDomain()
	vehicle.ID = id
	if err := h.fleet.Update(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *VehicleHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.fleet.SetStatus(r.Context(), id, domain.VehicleStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
