package repository

import (
	"context"

	"crmapi/internal/model"
)

// ClientRepository defines data access for clients using SQL queries only.
// No business logic here — strictly persistence operations. Methods that
// target a single row return sql.ErrNoRows untranslated when the id does
// not match; the service layer maps that to its own not-found error.
type ClientRepository interface {
	// List returns every client ordered by creation time descending.
	// The result set is unbounded; the surface has no pagination.
	List(ctx context.Context) ([]model.Client, error)

	// FindByID returns a client by its id.
	FindByID(ctx context.Context, id int64) (*model.Client, error)

	// Create inserts a new client row. The database assigns id and
	// created_at; the stored record is returned.
	Create(ctx context.Context, in *model.ClientInput) (*model.Client, error)

	// Update overwrites every mutable column of the row unconditionally.
	// Absent input fields are written as NULL, not kept.
	Update(ctx context.Context, id int64, in *model.ClientInput) (*model.Client, error)

	// Delete removes the row. The documents foreign key cascades at the
	// store level, so owned documents disappear with the client.
	Delete(ctx context.Context, id int64) error
}
