package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/repository"
	"autonom-backend/internal/storage"
)

type documentService struct {
	documentRepo    repository.DocumentRepository
	reservationRepo repository.ReservationRepository
	store           storage.Storage
}

func NewDocumentService(
	documentRepo repository.DocumentRepository,
	reservationRepo repository.ReservationRepository,
	store storage.Storage,
) DocumentService {
	return &documentService{
		documentRepo:    documentRepo,
		reservationRepo: reservationRepo,
		store:           store,
	}
}

func (s *documentService) Upload(ctx context.Context, req UploadRequest) (*domain.Document, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return nil, fmt.Errorf("%w: file name is required", domain.ErrValidation)
	}
	if !domain.ValidDocumentKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown document kind %q", domain.ErrValidation, req.Kind)
	}
	if req.ReservationID != nil {
		if _, err := s.reservationRepo.GetByID(ctx, *req.ReservationID); err != nil {
			return nil, err
		}
	}

	key, err := s.store.Save(ctx, req.FileName, req.MimeType, req.Size, req.Content)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		FileName:      req.FileName,
		StorageKey:    key,
		FileSize:      req.Size,
		MimeType:      req.MimeType,
		Kind:          req.Kind,
		ReservationID: req.ReservationID,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// The metadata row failed, drop the orphaned object.
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.Error("failed to remove orphaned upload", "key", key, "error", derr)
		}
		return nil, err
	}

	logger.Info("document uploaded", "document_id", doc.ID, "file_name", doc.FileName, "kind", doc.Kind)
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, id int32) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.store.Open(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}

func (s *documentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.documentRepo.List(ctx)
}
