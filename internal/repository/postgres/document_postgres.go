package postgres

import (
	"context"
	"database/sql"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

func scanDocumentWithClient(row rowScanner) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.ClientID,
		&d.Name,
		&d.Description,
		&d.Type,
		&d.FileURL,
		&d.Size,
		&d.UploadedBy,
		&d.CreatedAt,
		&d.ClientName,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all documents across all clients, newest first. The owner is
// attached via LEFT JOIN so a document whose client is gone still surfaces
// with a null client_name.
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT d.id, d.client_id, d.name, d.description, d.type, d.file_url, d.size, d.uploaded_by, d.created_at, c.name AS client_name
		FROM documents d
		LEFT JOIN clients c ON d.client_id = c.id
		ORDER BY d.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

// ListByClient returns one client's documents, newest first. This view
// inner-joins the owner: rows referencing a missing client are filtered
// out here even when the document row itself persists.
func (r *DocumentPostgres) ListByClient(ctx context.Context, clientID int64) ([]model.Document, error) {
	const q = `
		SELECT d.id, d.client_id, d.name, d.description, d.type, d.file_url, d.size, d.uploaded_by, d.created_at, c.name AS client_name
		FROM documents d
		JOIN clients c ON d.client_id = c.id
		WHERE d.client_id = $1
		ORDER BY d.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDocuments(rows)
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocumentWithClient(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID fetches a single document with its owning client's display name.
func (r *DocumentPostgres) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	const q = `
		SELECT d.id, d.client_id, d.name, d.description, d.type, d.file_url, d.size, d.uploaded_by, d.created_at, c.name AS client_name
		FROM documents d
		LEFT JOIN clients c ON d.client_id = c.id
		WHERE d.id = $1
	`
	return scanDocumentWithClient(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new document row. client_id is handed to the store as-is;
// the foreign key constraint decides whether the reference is acceptable.
func (r *DocumentPostgres) Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error) {
	const q = `
		INSERT INTO documents (client_id, name, description, type, file_url, size, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, client_id, name, description, type, file_url, size, uploaded_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		in.ClientID,
		in.Name,
		in.Description,
		in.Type,
		in.FileURL,
		in.Size,
		in.UploadedBy,
	)
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.ClientID,
		&d.Name,
		&d.Description,
		&d.Type,
		&d.FileURL,
		&d.Size,
		&d.UploadedBy,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update replaces name/description/type only where the caller supplied a
// value; nil arguments keep the stored column via COALESCE. Returns
// sql.ErrNoRows when the id matches nothing.
func (r *DocumentPostgres) Update(ctx context.Context, id int64, in *model.DocumentUpdate) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    type = COALESCE($3, type)
		WHERE id = $4
		RETURNING id, client_id, name, description, type, file_url, size, uploaded_by, created_at
	`
	row := r.db.QueryRowContext(ctx, q, in.Name, in.Description, in.Type, id)
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.ClientID,
		&d.Name,
		&d.Description,
		&d.Type,
		&d.FileURL,
		&d.Size,
		&d.UploadedBy,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes the document row. Returns sql.ErrNoRows when the id
// matches nothing.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
