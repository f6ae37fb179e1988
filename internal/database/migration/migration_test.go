package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	t.Run("applies every step in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS invoices").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS receipts").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS quotes").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS purchase_orders").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS contracts").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS expenses").WillReturnResult(sqlmock.NewResult(0, 0))

		err = Run(context.Background(), db, zap.NewNop())

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("step failure aborts the run", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").WillReturnError(errors.New("permission denied"))

		err = Run(context.Background(), db, zap.NewNop())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "create_table_documents")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// Clients must be created before any table that references it, and nothing
// in the DDL imposes uniqueness on client fields: identical payloads may be
// inserted many times.
func TestStepOrderAndConstraints(t *testing.T) {
	require.NotEmpty(t, steps)
	assert.Equal(t, "create_table_clients", steps[0].Name)

	for i, step := range steps {
		if strings.Contains(step.SQL, "REFERENCES clients") {
			assert.Greater(t, i, 0, "step %s must come after clients", step.Name)
		}
		assert.NotContains(t, step.SQL, "UNIQUE", "step %s should not add uniqueness", step.Name)
	}
}
