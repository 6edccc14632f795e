package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/service"
)

type DocumentHandler struct {
	documents service.DocumentService
}

func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// maxUploadMemory bounds the multipart form buffer, not the file size.
// The file size limit is enforced by the storage rules.
const maxUploadMemory = 1 << 20

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, fmt.Errorf("%w: invalid multipart form", domain.ErrValidation))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: missing file field", domain.ErrValidation))
		return
	}
	defer file.Close()

	req := service.UploadRequest{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Kind:     domain.DocumentKind(r.FormValue("kind")),
		Content:  file,
	}
	if raw := r.FormValue("reservation_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid reservation_id", domain.ErrValidation))
			return
		}
		rid := int32(id)
		req.ReservationID = &rid
	}

	doc, err := h.documents.Upload(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, content, err := h.documents.Download(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", doc.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, content)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}
