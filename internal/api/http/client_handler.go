package http

import (
	"net/http"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type ClientHandler struct {
	clients service.ClientService
}

func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type clientRequest struct {
	FullName       string `json:"full_name"`
	CNP            string `json:"cnp"`
	IDCardNumber   string `json:"id_card_number"`
	PassportNumber string `json:"passport_number"`
	DriverLicense  string `json:"driver_license"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (req clientRequest) toDomain() *domain.Client {
	return &domain.Client{
		FullName:       req.FullName,
		CNP:            req.CNP,
		IDCardNumber:   req.IDCardNumber,
		PassportNumber: req.PassportNumber,
		DriverLicense:  req.DriverLicense,
		Phone:          req.Phone,
		Email:          req.Email,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	client := req.toDomain()
	if err := h.clients.Create(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req clientRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	client := req.toDomain()
	client.ID = id
	if err := h.clients.Update(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}
