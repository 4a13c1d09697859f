package normalize

import (
	"testing"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

func TestDeduplicate_FirstWins(t *testing.T) {
	rows := []domain.Row{
		{Slug: "gan-356-m", Brand: "Store A"},
		{Slug: "moyu-rs3m", Brand: "Store A"},
		{Slug: "gan-356-m", Brand: "Store B"},
	}

	out := Deduplicate(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Slug != "gan-356-m" || out[0].Brand != "Store A" {
		t.Fatalf("first occurrence must win: %+v", out[0])
	}
	if out[1].Slug != "moyu-rs3m" {
		t.Fatalf("order of first appearance must hold: %+v", out[1])
	}
}

func TestDeduplicate_UniqueSlugs(t *testing.T) {
	rows := []domain.Row{
		{Slug: "a"}, {Slug: "b"}, {Slug: "a"}, {Slug: "c"}, {Slug: "b"},
	}

	out := Deduplicate(rows)

	seen := make(map[string]struct{})
	for _, r := range out {
		if _, dup := seen[r.Slug]; dup {
			t.Fatalf("duplicate slug %q survived", r.Slug)
		}
		seen[r.Slug] = struct{}{}
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 unique rows, got %d", len(out))
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	if out := Deduplicate(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d rows", len(out))
	}
}
