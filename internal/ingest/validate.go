package ingest

import (
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

type RowIssue struct {
	Slug    string `json:"slug"`
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InspectRows flags canonical rows that will be hard to review by hand:
// missing slug, brand or image. Purely advisory: nothing in the
// normalization core is fatal and flagged rows still flow to storage.
func InspectRows(rows []domain.Row) []RowIssue {
	var issues []RowIssue

	for _, r := range rows {
		if strings.TrimSpace(r.Slug) == "" {
			issues = append(issues, RowIssue{
				Slug: r.Slug, Path: "slug", Code: "empty_slug",
				Message: "row has no derived identity and cannot be upserted meaningfully",
			})
		}
		if strings.TrimSpace(r.Brand) == "" {
			issues = append(issues, RowIssue{
				Slug: r.Slug, Path: "brand", Code: "empty_brand",
				Message: "listing carried no vendor",
			})
		}
		if strings.TrimSpace(r.ImageURL) == "" {
			issues = append(issues, RowIssue{
				Slug: r.Slug, Path: "image_url", Code: "missing_image",
				Message: "no listing or variant image found",
			})
		}
	}

	return issues
}
