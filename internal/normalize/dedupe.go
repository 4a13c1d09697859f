package normalize

import "github.com/cubeindex/cubecatalog/internal/domain"

// Deduplicate collapses the accumulated rows down to one per slug.
// First occurrence wins; later rows with a colliding slug are dropped.
// Order of first appearance is preserved, which makes the result
// deterministic for a fixed input order: the driver feeds rows in
// lexical source-file order for exactly this reason.
func Deduplicate(rows []domain.Row) []domain.Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]domain.Row, 0, len(rows))

	for _, row := range rows {
		if _, dup := seen[row.Slug]; dup {
			continue
		}
		seen[row.Slug] = struct{}{}
		out = append(out, row)
	}
	return out
}
