package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

const mysqlRowColumns = `slug, series, model, brand, type,
	magnetic, maglev, smart, wca_legal,
	image_url, discontinued, surface_finish, stickered, release_date,
	size_mm, weight_grams, rating, notes, status, submitted_by,
	version_type, version_name, related_to`

// UpsertRows writes rows in multi-row INSERT ... ON DUPLICATE KEY
// UPDATE statements, at most DefaultBatchSize rows per statement. The
// slug unique key makes collisions update in place, so re-running an
// import never fails on existing data.
func (s *MySQLStore) UpsertRows(ctx context.Context, rows []domain.Row) error {
	for _, batch := range Batches(rows, DefaultBatchSize) {
		if err := s.upsertBatch(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) upsertBatch(ctx context.Context, rows []domain.Row) error {
	const cols = 23
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", cols), ", ") + ")"

	var b strings.Builder
	b.WriteString("INSERT INTO cube_models (" + mysqlRowColumns + ") VALUES ")

	args := make([]any, 0, len(rows)*cols)
	for i, r := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(placeholder)

		args = append(args,
			r.Slug, r.Series, r.Model, r.Brand, r.Type,
			r.Magnetic, r.Maglev, r.Smart, r.WCALegal,
			r.ImageURL, r.Discontinued, nullable(r.SurfaceFinish), r.Stickered, r.ReleaseDate,
			r.SizeMM, r.WeightGrams, r.Rating, r.Notes, r.Status, r.SubmittedBy,
			string(r.VersionType), r.VersionName, nullable(r.RelatedTo),
		)
	}

	b.WriteString(` ON DUPLICATE KEY UPDATE
		series = VALUES(series), model = VALUES(model),
		brand = VALUES(brand), type = VALUES(type),
		magnetic = VALUES(magnetic), maglev = VALUES(maglev),
		smart = VALUES(smart), wca_legal = VALUES(wca_legal),
		image_url = VALUES(image_url), discontinued = VALUES(discontinued),
		surface_finish = VALUES(surface_finish), stickered = VALUES(stickered),
		release_date = VALUES(release_date), size_mm = VALUES(size_mm),
		weight_grams = VALUES(weight_grams), rating = VALUES(rating),
		notes = VALUES(notes), status = VALUES(status),
		submitted_by = VALUES(submitted_by), version_type = VALUES(version_type),
		version_name = VALUES(version_name), related_to = VALUES(related_to)`)

	_, err := s.db.ExecContext(ctx, b.String(), args...)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
