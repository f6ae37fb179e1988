package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmapi/internal/model"
)

var documentCols = []string{"id", "client_id", "name", "description", "type", "file_url", "size", "uploaded_by", "created_at", "client_name"}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("includes documents of a deleted client", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(documentCols).
			AddRow(3, 1, "proposal.pdf", nil, "proposal", "https://files/3", "1.2 MB", "jan", now, "Acme").
			AddRow(2, 42, "orphan.pdf", nil, nil, "https://files/2", nil, nil, now.Add(-time.Minute), nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d LEFT JOIN clients c").
			WillReturnRows(rows)

		docs, err := repo.List(ctx)

		assert.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "Acme", *docs[0].ClientName)
		// The left join keeps rows whose owner is gone; client_name is null.
		assert.Nil(t, docs[1].ClientName)
	})
}

func TestDocumentPostgres_ListByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow(3, 1, "proposal.pdf", "Q3 proposal", "proposal", "https://files/3", "1.2 MB", "jan", time.Now(), "Acme")

		mock.ExpectQuery("SELECT (.+) FROM documents d JOIN clients c (.+) WHERE d.client_id = ?").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		docs, err := repo.ListByClient(ctx, 1)

		assert.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, int64(1), docs[0].ClientID)
		assert.Equal(t, "Q3 proposal", *docs[0].Description)
	})

	t.Run("missing client yields empty list", func(t *testing.T) {
		// Inner join: documents of a nonexistent client never surface here.
		mock.ExpectQuery("SELECT (.+) FROM documents d JOIN clients c (.+) WHERE d.client_id = ?").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(documentCols))

		docs, err := repo.ListByClient(ctx, 42)

		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Len(t, docs, 0)
	})
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(documentCols).
			AddRow(3, 1, "proposal.pdf", nil, nil, "https://files/3", nil, nil, time.Now(), "Acme")

		mock.ExpectQuery("SELECT (.+) FROM documents d LEFT JOIN clients c (.+) WHERE d.id = ?").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, 3)

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "proposal.pdf", doc.Name)
		assert.Equal(t, "Acme", *doc.ClientName)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents d LEFT JOIN clients c (.+) WHERE d.id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	in := &model.DocumentInput{
		ClientID: 1,
		Name:     "contract.pdf",
		Type:     strPtr("contract"),
		FileURL:  "https://files/9",
		Size:     strPtr("800 KB"),
	}

	rows := sqlmock.NewRows([]string{"id", "client_id", "name", "description", "type", "file_url", "size", "uploaded_by", "created_at"}).
		AddRow(9, 1, "contract.pdf", nil, "contract", "https://files/9", "800 KB", nil, time.Now())

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(int64(1), "contract.pdf", nil, in.Type, "https://files/9", in.Size, nil).
		WillReturnRows(rows)

	doc, err := repo.Create(ctx, in)

	assert.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, int64(9), doc.ID)
	assert.Equal(t, "contract", *doc.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("keeps omitted fields", func(t *testing.T) {
		// Only description is supplied; name and type survive via COALESCE.
		in := &model.DocumentUpdate{Description: strPtr("updated notes")}

		rows := sqlmock.NewRows([]string{"id", "client_id", "name", "description", "type", "file_url", "size", "uploaded_by", "created_at"}).
			AddRow(3, 1, "proposal.pdf", "updated notes", "proposal", "https://files/3", nil, nil, time.Now())

		mock.ExpectQuery("UPDATE documents").
			WithArgs(nil, in.Description, nil, int64(3)).
			WillReturnRows(rows)

		doc, err := repo.Update(ctx, 3, in)

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "proposal.pdf", doc.Name)
		assert.Equal(t, "updated notes", *doc.Description)
		assert.Equal(t, "proposal", *doc.Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE documents").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.Update(ctx, 99, &model.DocumentUpdate{Name: strPtr("x")})

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), sql.ErrNoRows)
	})
}
