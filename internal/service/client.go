package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrClientNotFound = errors.New("client not found")
)

// ClientService defines the use cases for handling clients.
type ClientService interface {
	// List returns all clients, newest first.
	List(ctx context.Context) ([]model.Client, error)

	// Get returns one client together with its documents, newest first.
	Get(ctx context.Context, id int64) (*model.Client, []model.Document, error)

	// Create validates that name is non-empty and inserts the client.
	// Duplicates are allowed; there is no uniqueness constraint.
	Create(ctx context.Context, in *model.ClientInput) (*model.Client, error)

	// Update validates that name is non-empty and overwrites every mutable
	// field of the row. Absent fields become NULL.
	Update(ctx context.Context, id int64, in *model.ClientInput) (*model.Client, error)

	// Delete removes the client; the store cascades to owned documents.
	Delete(ctx context.Context, id int64) error
}

// clientService is a concrete implementation of ClientService.
type clientService struct {
	clients   repository.ClientRepository
	documents repository.DocumentRepository
}

// NewClientService constructs a new ClientService.
func NewClientService(clients repository.ClientRepository, documents repository.DocumentRepository) ClientService {
	return &clientService{clients: clients, documents: documents}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Get(ctx context.Context, id int64) (*model.Client, []model.Document, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, err
	}
	docs, err := s.documents.ListByClient(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return client, docs, nil
}

func (s *clientService) Create(ctx context.Context, in *model.ClientInput) (*model.Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	return s.clients.Create(ctx, in)
}

func (s *clientService) Update(ctx context.Context, id int64, in *model.ClientInput) (*model.Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	client, err := s.clients.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}
