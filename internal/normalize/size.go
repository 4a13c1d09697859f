package normalize

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// DefaultSizeMM is the fallback when no measurement is found anywhere.
const DefaultSizeMM = 56.0

// DetectSizeMM resolves the physical edge length of a listing. The
// strategies run in priority order and the first hit wins:
//
//  1. an explicit "NNmm" measurement anywhere in the listing text
//  2. an NxN token in the title, resolved through the size table
//  3. DefaultSizeMM
//
// Absence is never an error; the chain always produces a number.
func (r Rules) DetectSizeMM(l domain.Listing) float64 {
	if mm, ok := explicitMillimeters(l); ok {
		return mm
	}
	if mm, ok := r.tableLookup(l.Title); ok {
		return mm
	}
	return DefaultSizeMM
}

// explicitMillimeters searches the concatenated listing text (title,
// unescaped body, tags, variant titles) for a "NN.Nmm" measurement.
func explicitMillimeters(l domain.Listing) (float64, bool) {
	parts := []string{l.Title, html.UnescapeString(l.BodyHTML)}
	parts = append(parts, l.Tags...)
	for _, v := range l.Variants {
		parts = append(parts, v.Title)
	}

	m := mmPattern.FindStringSubmatch(strings.ToLower(strings.Join(parts, " ")))
	if m == nil {
		return 0, false
	}
	mm, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return mm, true
}

// tableLookup maps an "N x N" or "N×N" token in the title through the
// fixed size table. Unknown keys fall through to the default.
func (r Rules) tableLookup(title string) (float64, bool) {
	m := nxnPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	mm, ok := r.SizeTableMM[fmt.Sprintf("%sx%s", m[1], m[2])]
	return mm, ok
}
