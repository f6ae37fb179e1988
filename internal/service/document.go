package service

import (
	"context"
	"database/sql"
	"errors"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

var (
	ErrDocumentFieldsRequired = errors.New("client id, document name, and file url are required")
	ErrDocumentNotFound       = errors.New("document not found")
)

// DocumentService defines the use cases for handling document metadata.
type DocumentService interface {
	// List returns documents newest first. With a clientID the result is
	// restricted to that client via an inner join on the owner; without
	// one, all documents are returned via a left join, so orphaned rows
	// still surface. The asymmetry mirrors the observed contract.
	List(ctx context.Context, clientID *int64) ([]model.Document, error)

	// Get returns one document with its owning client's name attached.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// Create validates that client_id, name and file_url are present and
	// inserts the row. The client reference is not pre-checked; the
	// store's foreign key has the final word.
	Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error)

	// Update applies keep-if-absent semantics per field.
	Update(ctx context.Context, id int64, in *model.DocumentUpdate) (*model.Document, error)

	// Delete removes the document.
	Delete(ctx context.Context, id int64) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(documents repository.DocumentRepository) DocumentService {
	return &documentService{documents: documents}
}

func (s *documentService) List(ctx context.Context, clientID *int64) ([]model.Document, error) {
	if clientID != nil {
		return s.documents.ListByClient(ctx, *clientID)
	}
	return s.documents.List(ctx)
}

func (s *documentService) Get(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error) {
	if in.ClientID == 0 || in.Name == "" || in.FileURL == "" {
		return nil, ErrDocumentFieldsRequired
	}
	return s.documents.Create(ctx, in)
}

func (s *documentService) Update(ctx context.Context, id int64, in *model.DocumentUpdate) (*model.Document, error) {
	doc, err := s.documents.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}
