package ingest

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

type UnknownKeyWarning struct {
	UnknownKeys []string `json:"unknown_keys"`
}

type ParseResult struct {
	Listings []domain.Listing
	Warnings UnknownKeyWarning
}

// ParseListingsAllowUnknown decodes one store catalog file: a flat JSON
// array of Shopify-style products. Known fields are extracted
// individually so a malformed or missing field degrades to its zero
// value instead of failing the listing; unknown top-level keys are
// collected and reported so schema drift in a store's catalog shows up
// in the run log rather than silently vanishing.
func ParseListingsAllowUnknown(body []byte) (ParseResult, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	var rawItems []map[string]json.RawMessage
	if err := dec.Decode(&rawItems); err != nil {
		return ParseResult{}, err
	}

	unknown := make(map[string]struct{})

	listings := make([]domain.Listing, 0, len(rawItems))
	for _, item := range rawItems {
		l, itemUnknown := parseSingleListing(item)
		for k := range itemUnknown {
			unknown[k] = struct{}{}
		}
		listings = append(listings, l)
	}

	return ParseResult{
		Listings: listings,
		Warnings: UnknownKeyWarning{UnknownKeys: setToSortedSlice(unknown)},
	}, nil
}

func parseSingleListing(item map[string]json.RawMessage) (domain.Listing, map[string]struct{}) {
	known := knownTopLevelKeys()
	unknown := make(map[string]struct{})

	var l domain.Listing

	for key := range item {
		if _, ok := known[key]; !ok {
			kk := strings.TrimSpace(key)
			if kk != "" {
				unknown[kk] = struct{}{}
			}
		}
	}

	unmarshalIfPresent(item, "title", &l.Title)
	unmarshalIfPresent(item, "vendor", &l.Vendor)
	unmarshalIfPresent(item, "product_type", &l.ProductType)
	unmarshalIfPresent(item, "tags", &l.Tags)
	unmarshalIfPresent(item, "body_html", &l.BodyHTML)
	unmarshalIfPresent(item, "published_at", &l.PublishedAt)
	unmarshalIfPresent(item, "images", &l.Images)
	unmarshalIfPresent(item, "variants", &l.Variants)

	return l, unknown
}

// knownTopLevelKeys covers the fields the pipeline consumes plus the
// Shopify envelope fields it deliberately ignores; only genuinely
// novel keys get warned about.
func knownTopLevelKeys() map[string]struct{} {
	return map[string]struct{}{
		"title":        {},
		"vendor":       {},
		"product_type": {},
		"tags":         {},
		"body_html":    {},
		"published_at": {},
		"images":       {},
		"variants":     {},

		// ignored Shopify envelope fields
		"id":         {},
		"handle":     {},
		"created_at": {},
		"updated_at": {},
		"options":    {},
	}
}

func unmarshalIfPresent[T any](obj map[string]json.RawMessage, key string, dst *T) {
	raw, ok := obj[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst) // malformed fields keep their zero value
}

func setToSortedSlice(set map[string]struct{}) []string {
	if len(set) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
