package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"crmapi/internal/model"
	"crmapi/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*model.Client, error) {
	var c model.Client
	var services pq.StringArray
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Company,
		&c.Phone,
		&c.Location,
		&services,
		&c.Budget,
		&c.Notes,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Services = []string(services)
	return &c, nil
}

// List returns all clients, newest first. No pagination by contract.
func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	const q = `
		SELECT id, name, email, company, phone, location, services, budget, notes, created_at
		FROM clients
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]model.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

// FindByID fetches a single client by its id.
func (r *ClientPostgres) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	const q = `
		SELECT id, name, email, company, phone, location, services, budget, notes, created_at
		FROM clients
		WHERE id = $1
	`
	return scanClient(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new client row and returns the stored record with the
// database-assigned id and created_at.
func (r *ClientPostgres) Create(ctx context.Context, in *model.ClientInput) (*model.Client, error) {
	const q = `
		INSERT INTO clients (name, email, company, phone, location, services, budget, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, company, phone, location, services, budget, notes, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		in.Name,
		in.Email,
		in.Company,
		in.Phone,
		in.Location,
		pq.Array(in.Services),
		in.Budget,
		in.Notes,
	)
	return scanClient(row)
}

// Update overwrites every mutable column unconditionally. Absent input
// fields are nil pointers and land in the row as NULL; this is the
// contract, not an oversight. Returns sql.ErrNoRows when id matches nothing.
func (r *ClientPostgres) Update(ctx context.Context, id int64, in *model.ClientInput) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET name = $1,
		    email = $2,
		    company = $3,
		    phone = $4,
		    location = $5,
		    services = $6,
		    budget = $7,
		    notes = $8
		WHERE id = $9
		RETURNING id, name, email, company, phone, location, services, budget, notes, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		in.Name,
		in.Email,
		in.Company,
		in.Phone,
		in.Location,
		pq.Array(in.Services),
		in.Budget,
		in.Notes,
		id,
	)
	return scanClient(row)
}

// Delete removes the client row. Owned documents are removed by the
// ON DELETE CASCADE constraint, not by this layer.
// Returns sql.ErrNoRows when the id matches nothing.
func (r *ClientPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM clients WHERE id = $1`
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
