package ingest

import (
	"reflect"
	"testing"
)

func TestParseListingsAllowUnknown_KnownFields(t *testing.T) {
	body := []byte(`[{
		"title": "GAN 356 M",
		"vendor": "GAN",
		"product_type": "Speed Cube",
		"tags": ["3x3", "magnetic"],
		"body_html": "<p>56mm</p>",
		"published_at": "2023-05-01T10:00:00-04:00",
		"images": [{"src": "https://cdn.example.com/a.jpg"}],
		"variants": [{"title": "Black", "grams": 150, "available": true}]
	}]`)

	res, err := ParseListingsAllowUnknown(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(res.Listings))
	}

	l := res.Listings[0]
	if l.Title != "GAN 356 M" || l.Vendor != "GAN" || l.ProductType != "Speed Cube" {
		t.Fatalf("fields not parsed: %+v", l)
	}
	if len(l.Variants) != 1 || l.Variants[0].Grams != 150 || !l.Variants[0].Available {
		t.Fatalf("variants not parsed: %+v", l.Variants)
	}
	if len(res.Warnings.UnknownKeys) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings.UnknownKeys)
	}
}

func TestParseListingsAllowUnknown_CollectsUnknownKeysSorted(t *testing.T) {
	body := []byte(`[
		{"title": "A", "zeta_field": 1},
		{"title": "B", "alpha_field": true, "zeta_field": 2}
	]`)

	res, err := ParseListingsAllowUnknown(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"alpha_field", "zeta_field"}
	if !reflect.DeepEqual(res.Warnings.UnknownKeys, want) {
		t.Fatalf("unknown keys = %v, want %v", res.Warnings.UnknownKeys, want)
	}
}

func TestParseListingsAllowUnknown_IgnoredEnvelopeKeys(t *testing.T) {
	body := []byte(`[{"id": 42, "handle": "gan-356-m", "title": "GAN 356 M"}]`)

	res, err := ParseListingsAllowUnknown(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings.UnknownKeys) != 0 {
		t.Fatalf("envelope keys must not warn: %v", res.Warnings.UnknownKeys)
	}
}

func TestParseListingsAllowUnknown_MalformedFieldKeepsZeroValue(t *testing.T) {
	// tags as a string instead of a list: the listing survives with
	// no tags rather than failing the file.
	body := []byte(`[{"title": "A", "tags": "not-a-list"}]`)

	res, err := ParseListingsAllowUnknown(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Listings[0].Title != "A" {
		t.Fatalf("listing lost: %+v", res.Listings[0])
	}
	if len(res.Listings[0].Tags) != 0 {
		t.Fatalf("expected zero-value tags, got %v", res.Listings[0].Tags)
	}
}

func TestParseListingsAllowUnknown_MissingFieldsDefault(t *testing.T) {
	res, err := ParseListingsAllowUnknown([]byte(`[{}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := res.Listings[0]
	if l.Title != "" || len(l.Tags) != 0 || len(l.Variants) != 0 {
		t.Fatalf("expected zero values, got %+v", l)
	}
}

func TestParseListingsAllowUnknown_RejectsNonArray(t *testing.T) {
	if _, err := ParseListingsAllowUnknown([]byte(`{"products": []}`)); err == nil {
		t.Fatalf("expected error for non-array body")
	}
}
