package store

import (
	"fmt"
	"testing"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

func makeRows(n int) []domain.Row {
	rows := make([]domain.Row, n)
	for i := range rows {
		rows[i] = domain.Row{Slug: fmt.Sprintf("cube-%d", i)}
	}
	return rows
}

func TestBatches_Boundaries(t *testing.T) {
	cases := []struct {
		rows      int
		size      int
		batches   int
		lastBatch int
	}{
		{0, 500, 0, 0},
		{1, 500, 1, 1},
		{500, 500, 1, 500},
		{501, 500, 2, 1},
		{1200, 500, 3, 200},
	}

	for _, tc := range cases {
		got := Batches(makeRows(tc.rows), tc.size)
		if len(got) != tc.batches {
			t.Fatalf("%d rows: expected %d batches, got %d", tc.rows, tc.batches, len(got))
		}
		if tc.batches > 0 && len(got[len(got)-1]) != tc.lastBatch {
			t.Fatalf("%d rows: last batch = %d, want %d", tc.rows, len(got[len(got)-1]), tc.lastBatch)
		}
	}
}

func TestBatches_PreservesOrder(t *testing.T) {
	rows := makeRows(7)
	var flat []domain.Row
	for _, b := range Batches(rows, 3) {
		flat = append(flat, b...)
	}
	for i := range rows {
		if flat[i].Slug != rows[i].Slug {
			t.Fatalf("order broken at %d: %q", i, flat[i].Slug)
		}
	}
}

func TestBatches_ZeroSizeUsesDefault(t *testing.T) {
	got := Batches(makeRows(DefaultBatchSize+1), 0)
	if len(got) != 2 {
		t.Fatalf("expected default batch size, got %d batches", len(got))
	}
}
