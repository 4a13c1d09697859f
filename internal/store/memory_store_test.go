package store

import (
	"context"
	"testing"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

func TestMemoryStore_UpsertReplacesBySlug(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.UpsertRows(ctx, []domain.Row{
		{Slug: "gan-356-m", Brand: "Store A"},
		{Slug: "moyu-rs3m", Brand: "Store A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = s.UpsertRows(ctx, []domain.Row{{Slug: "gan-356-m", Brand: "Store B"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", s.Len())
	}

	r, ok := s.Get("gan-356-m")
	if !ok {
		t.Fatalf("row missing")
	}
	if r.Brand != "Store B" {
		t.Fatalf("upsert must replace: %+v", r)
	}
}
