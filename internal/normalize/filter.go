package normalize

import "strings"

// ShouldSkip reports whether a listing is out of domain entirely
// (apparel, timers, accessories, ...). The match is a case-insensitive
// substring test so "Accessories Bundle" and "Timer Accessories" both
// hit the "accessories" entry. An empty product_type never matches.
func (r Rules) ShouldSkip(productType string) bool {
	pt := strings.ToLower(productType)
	for _, skip := range r.SkipProductTypes {
		if strings.Contains(pt, skip) {
			return true
		}
	}
	return false
}
