package store

import (
	"context"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// DefaultBatchSize bounds one upsert call. REST backends cap payload
// row counts around a thousand; 500 leaves headroom and matches the
// chunking the catalog has always been imported with.
const DefaultBatchSize = 500

// Store is insert-or-update persistence keyed on slug. The pipeline is
// agnostic to the backing technology; implementations must treat a
// colliding slug as an update, so repeated runs are safe.
type Store interface {
	UpsertRows(ctx context.Context, rows []domain.Row) error
}

// Batches splits rows into chunks of at most size, preserving order.
func Batches(rows []domain.Row, size int) [][]domain.Row {
	if size <= 0 {
		size = DefaultBatchSize
	}

	var out [][]domain.Row
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}
