package ingest

import (
	"testing"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

func TestInspectRows_FlagsMissingFields(t *testing.T) {
	rows := []domain.Row{
		{Slug: "", Brand: "GAN", ImageURL: "https://cdn.example.com/a.jpg"},
		{Slug: "ok", Brand: "", ImageURL: ""},
	}

	issues := InspectRows(rows)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}

	codes := make(map[string]int)
	for _, is := range issues {
		codes[is.Code]++
	}
	if codes["empty_slug"] != 1 || codes["empty_brand"] != 1 || codes["missing_image"] != 1 {
		t.Fatalf("unexpected issue codes: %v", codes)
	}
}

func TestInspectRows_CleanRows(t *testing.T) {
	rows := []domain.Row{
		{Slug: "gan-356-m", Brand: "GAN", ImageURL: "https://cdn.example.com/a.jpg"},
	}
	if issues := InspectRows(rows); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
