package repository

import (
	"context"

	"crmapi/internal/model"
)

// DocumentRepository defines data access for document metadata using SQL
// queries only. Single-row methods return sql.ErrNoRows untranslated when
// the id does not match.
type DocumentRepository interface {
	// List returns all documents across all clients ordered by creation
	// time descending. The owning client's name is attached via a left
	// join, so documents whose owner is gone still surface with a null
	// client_name.
	List(ctx context.Context) ([]model.Document, error)

	// ListByClient returns the documents of one client, newest first.
	// This view inner-joins the owning client: rows belonging to a
	// missing client do not appear here even if they exist in the table.
	ListByClient(ctx context.Context, clientID int64) ([]model.Document, error)

	// FindByID returns one document with its owning client's name attached.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// Create inserts a new document row. client_id is not pre-checked
	// against the clients table; the store's foreign key decides.
	Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error)

	// Update replaces name/description/type only where a new value is
	// supplied; nil fields keep their stored value.
	Update(ctx context.Context, id int64, in *model.DocumentUpdate) (*model.Document, error)

	// Delete removes the row.
	Delete(ctx context.Context, id int64) error
}
