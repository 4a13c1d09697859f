package normalize

import "strings"

// IsWCALegal approximates whether a puzzle is allowed in competition.
// A listing is illegal when its declared type exactly matches the
// illegal-type set (smart cubes, irregular cuboids, oversize NxN, ...)
// or any tag, lowercased, is in the illegal-tag set (connectivity,
// sensors, displays, power, motors, transparency keywords). Everything
// else is treated as legal. Heuristic only: it flags obvious
// non-event hardware, it does not certify compliance.
func (r Rules) IsWCALegal(productType string, tags []string) bool {
	if _, illegal := r.IllegalCubeTypes[productType]; illegal {
		return false
	}
	for _, tag := range tags {
		if _, illegal := r.IllegalTags[strings.ToLower(tag)]; illegal {
			return false
		}
	}
	return true
}
