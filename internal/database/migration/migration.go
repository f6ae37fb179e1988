package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Tables are created in dependency order: clients first, then every table
// holding a foreign key to it. Each statement is structurally idempotent,
// so repeated runs converge to the same schema.
var steps = []migrationStep{
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         SERIAL    PRIMARY KEY,
  name       TEXT      NOT NULL,
  email      TEXT,
  company    TEXT,
  phone      TEXT,
  location   TEXT,
  services   TEXT[],
  budget     NUMERIC,
  notes      TEXT,
  created_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id          SERIAL    PRIMARY KEY,
  client_id   INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  name        TEXT      NOT NULL,
  description TEXT,
  type        TEXT,
  file_url    TEXT,
  size        TEXT,
  uploaded_by TEXT,
  created_at  TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_invoices",
		SQL: `CREATE TABLE IF NOT EXISTS invoices (
  id             SERIAL    PRIMARY KEY,
  client_id      INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  amount         NUMERIC   NOT NULL,
  description    TEXT,
  status         TEXT      DEFAULT 'draft',
  invoice_number TEXT,
  file_url       TEXT,
  issued_date    DATE,
  due_date       DATE,
  created_at     TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_receipts",
		SQL: `CREATE TABLE IF NOT EXISTS receipts (
  id             SERIAL    PRIMARY KEY,
  client_id      INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  amount         NUMERIC   NOT NULL,
  description    TEXT,
  receipt_number TEXT,
  file_url       TEXT,
  receipt_date   DATE,
  created_at     TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_quotes",
		SQL: `CREATE TABLE IF NOT EXISTS quotes (
  id           SERIAL    PRIMARY KEY,
  client_id    INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  amount       NUMERIC   NOT NULL,
  description  TEXT,
  quote_number TEXT,
  file_url     TEXT,
  valid_until  DATE,
  created_at   TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_purchase_orders",
		SQL: `CREATE TABLE IF NOT EXISTS purchase_orders (
  id            SERIAL    PRIMARY KEY,
  client_id     INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  amount        NUMERIC   NOT NULL,
  description   TEXT,
  po_number     TEXT,
  file_url      TEXT,
  issue_date    DATE,
  delivery_date DATE,
  created_at    TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_contracts",
		SQL: `CREATE TABLE IF NOT EXISTS contracts (
  id          SERIAL    PRIMARY KEY,
  client_id   INTEGER   REFERENCES clients(id) ON DELETE CASCADE,
  title       TEXT      NOT NULL,
  description TEXT,
  file_url    TEXT,
  start_date  DATE,
  end_date    DATE,
  created_at  TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		Name: "create_table_expenses",
		SQL: `CREATE TABLE IF NOT EXISTS expenses (
  id           SERIAL    PRIMARY KEY,
  amount       NUMERIC   NOT NULL,
  description  TEXT,
  category     TEXT,
  file_url     TEXT,
  expense_date DATE,
  created_at   TIMESTAMP DEFAULT NOW()
);`,
	},
}

// Run executes the schema bootstrap. It is called from main before the
// server accepts its first request; there is no lazy first-request
// initialization and no process-wide "initialized" flag. A step failure
// aborts the run and is reported to the caller; nothing is retried.
func Run(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("schema bootstrap step failed",
				zap.String("step", step.Name),
				zap.Duration("took", time.Since(stepStart)),
				zap.Error(err),
			)
			return fmt.Errorf("bootstrap step %s: %w", step.Name, err)
		}
		log.Debug("schema bootstrap step applied",
			zap.String("step", step.Name),
			zap.Duration("took", time.Since(stepStart)),
		)
	}

	log.Info("schema bootstrap complete",
		zap.Int("steps", len(steps)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
