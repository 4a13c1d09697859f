package migrate

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	Name string
	SQL  string
}

// Schema history for the MySQL backend. Append only; applied names are
// tracked in schema_migrations so re-running is safe.
var migrations = []migration{
	{
		Name: "0001_cube_models",
		SQL: `
CREATE TABLE IF NOT EXISTS cube_models (
  slug VARCHAR(255) NOT NULL,
  series VARCHAR(255) NOT NULL DEFAULT '',
  model VARCHAR(255) NOT NULL DEFAULT '',
  brand VARCHAR(255) NOT NULL DEFAULT '',
  type VARCHAR(255) NOT NULL DEFAULT '',
  magnetic TINYINT(1) NOT NULL DEFAULT 0,
  maglev TINYINT(1) NOT NULL DEFAULT 0,
  smart TINYINT(1) NOT NULL DEFAULT 0,
  wca_legal TINYINT(1) NOT NULL DEFAULT 1,
  image_url TEXT,
  discontinued TINYINT(1) NOT NULL DEFAULT 0,
  surface_finish VARCHAR(64) NULL,
  stickered TINYINT(1) NOT NULL DEFAULT 0,
  release_date VARCHAR(10) NOT NULL DEFAULT '',
  size_mm DOUBLE NOT NULL DEFAULT 56,
  weight_grams INT NOT NULL DEFAULT 0,
  rating INT NOT NULL DEFAULT 0,
  notes TEXT,
  status VARCHAR(32) NOT NULL DEFAULT 'Pending',
  submitted_by VARCHAR(64) NOT NULL DEFAULT '',
  version_type VARCHAR(8) NOT NULL DEFAULT 'Base',
  version_name VARCHAR(255) NOT NULL DEFAULT '',
  related_to VARCHAR(255) NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (slug)
) ENGINE=InnoDB;
`,
	},
}

// Apply runs any pending migrations against the MySQL backend.
func Apply(ctx context.Context, db *sql.DB) error {
	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return err
	}

	for _, m := range migrations {
		applied, err := isApplied(ctx, db, m.Name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if _, err := db.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}

		if err := markApplied(ctx, db, m.Name); err != nil {
			return err
		}
	}

	return nil
}

func ensureSchemaMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
  name VARCHAR(255) NOT NULL,
  applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (name)
) ENGINE=InnoDB;
`)
	return err
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var v string
	err := db.QueryRowContext(ctx, `SELECT name FROM schema_migrations WHERE name = ?`, name).Scan(&v)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func markApplied(ctx context.Context, db *sql.DB, name string) error {
	_, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES (?)`, name)
	return err
}
